package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/giftlink/giftlink-backend/internal/config"
)

// Collection names inside the gift database.
const (
	UsersCollection  = "users"
	GiftsCollection  = "gifts"
	ResetsCollection = "password_resets"
)

// Connect establishes the MongoDB connection and verifies it with a ping.
// Called once at process start; the returned handle is injected into the
// repositories, there is no ambient global client.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}

	return client.Database(cfg.Database), nil
}
