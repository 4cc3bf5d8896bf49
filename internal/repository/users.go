// Package repository contains the store adapters over the document
// collections. Repositories return nil documents (not errors) for
// plain not-found lookups.
package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/giftlink/giftlink-backend/internal/db"
	"github.com/giftlink/giftlink-backend/internal/models"
)

// UserRepository abstracts lookup/insert/update of user records keyed by email.
type UserRepository interface {
	// FindByEmail returns the user with the given email, or nil when absent.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// FindByID returns the user with the given hex id, or nil when absent.
	FindByID(ctx context.Context, id string) (*models.User, error)
	// Insert stores a new user and returns the assigned hex id.
	Insert(ctx context.Context, user *models.User) (string, error)
	// FindAndReplace atomically replaces the user keyed by email and
	// returns the post-update document, or nil when absent.
	FindAndReplace(ctx context.Context, email string, user *models.User) (*models.User, error)
}

type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a UserRepository backed by the users collection.
func NewUserRepository(database *mongo.Database) UserRepository {
	return &mongoUserRepository{collection: database.Collection(db.UsersCollection)}
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id cannot match any document.
		return nil, nil
	}

	var user models.User
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

func (r *mongoUserRepository) Insert(ctx context.Context, user *models.User) (string, error) {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}
	oid := result.InsertedID.(primitive.ObjectID)
	user.ID = oid
	return oid.Hex(), nil
}

func (r *mongoUserRepository) FindAndReplace(ctx context.Context, email string, user *models.User) (*models.User, error) {
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)

	var updated models.User
	err := r.collection.FindOneAndReplace(ctx, bson.M{"email": email}, user, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("replace user: %w", err)
	}
	return &updated, nil
}
