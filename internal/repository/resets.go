package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/giftlink/giftlink-backend/internal/db"
	"github.com/giftlink/giftlink-backend/internal/models"
)

// ResetRepository stores the single-use password reset codes.
type ResetRepository interface {
	// Save stores a new reset code record.
	Save(ctx context.Context, reset *models.PasswordReset) error
	// Latest returns the most recent reset record for the email, or nil.
	Latest(ctx context.Context, email string) (*models.PasswordReset, error)
	// MarkUsed marks the record with the given email and code as consumed.
	MarkUsed(ctx context.Context, email, code string) error
}

type mongoResetRepository struct {
	collection *mongo.Collection
}

// NewResetRepository creates a ResetRepository backed by the password_resets collection.
func NewResetRepository(database *mongo.Database) ResetRepository {
	return &mongoResetRepository{collection: database.Collection(db.ResetsCollection)}
}

func (r *mongoResetRepository) Save(ctx context.Context, reset *models.PasswordReset) error {
	if _, err := r.collection.InsertOne(ctx, reset); err != nil {
		return fmt.Errorf("insert reset code: %w", err)
	}
	return nil
}

func (r *mongoResetRepository) Latest(ctx context.Context, email string) (*models.PasswordReset, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var reset models.PasswordReset
	err := r.collection.FindOne(ctx, bson.M{"email": email}, opts).Decode(&reset)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find reset code: %w", err)
	}
	return &reset, nil
}

func (r *mongoResetRepository) MarkUsed(ctx context.Context, email, code string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"email": email, "code": code},
		bson.M{"$set": bson.M{"used": true}})
	if err != nil {
		return fmt.Errorf("mark reset code used: %w", err)
	}
	return nil
}
