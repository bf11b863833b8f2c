package database

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/Rashed1879/talk-trove-server/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// NewMongoClient connects to the Atlas deployment and verifies the
// connection with a ping. The client is acquired once at startup, shared by
// all requests, and released by the caller on shutdown.
func NewMongoClient(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	uri := fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(cfg.DB.User),
		url.QueryEscape(cfg.DB.Pass),
		cfg.DB.Host,
	)

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.Println("Connected to MongoDB successfully")
	return client, nil
}
