package classes

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const queryTimeout = 5 * time.Second

type Repository struct {
	coll *mongo.Collection
}

func NewRepository(coll *mongo.Collection) *Repository {
	return &Repository{coll: coll}
}

func (r *Repository) All(ctx context.Context) ([]Class, error) {
	return r.find(ctx, bson.D{})
}

func (r *Repository) ByInstructor(ctx context.Context, email string) ([]Class, error) {
	return r.find(ctx, bson.D{{Key: "instructorEmail", Value: email}})
}

func (r *Repository) find(ctx context.Context, filter bson.D) ([]Class, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find classes: %w", err)
	}

	result := []Class{}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("decode classes: %w", err)
	}
	return result, nil
}

func (r *Repository) Insert(ctx context.Context, cl Class) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.coll.InsertOne(ctx, cl)
	if err != nil {
		return nil, fmt.Errorf("insert class: %w", err)
	}
	return result, nil
}

func (r *Repository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	return r.set(ctx, id, "status", status)
}

func (r *Repository) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (*mongo.UpdateResult, error) {
	return r.set(ctx, id, "feedback", feedback)
}

func (r *Repository) set(ctx context.Context, id primitive.ObjectID, field, value string) (*mongo.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.D{{Key: "$set", Value: bson.D{{Key: field, Value: value}}}}
	result, err := r.coll.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update class %s: %w", field, err)
	}
	return result, nil
}
