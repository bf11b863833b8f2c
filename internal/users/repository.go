package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 5 * time.Second

type Repository struct {
	coll *mongo.Collection
}

func NewRepository(coll *mongo.Collection) *Repository {
	return &Repository{coll: coll}
}

// EnsureIndexes creates the unique index on email that closes the
// check-then-insert race in registration.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

func (r *Repository) All(ctx context.Context) ([]User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	result := []User{}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return result, nil
}

// ByEmail returns nil without error when no user matches.
func (r *Repository) ByEmail(ctx context.Context, email string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var u User
	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

// RoleByEmail satisfies middleware.RoleStore. An unknown user has no role.
func (r *Repository) RoleByEmail(ctx context.Context, email string) (string, error) {
	u, err := r.ByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", nil
	}
	return u.Role, nil
}

func (r *Repository) Insert(ctx context.Context, u User) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return result, nil
}

func (r *Repository) SetRole(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: role}}}}
	result, err := r.coll.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update user role: %w", err)
	}
	return result, nil
}
