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
	"github.com/giftlink/giftlink-backend/internal/search"
)

// GiftRepository abstracts queries against the gifts collection.
type GiftRepository interface {
	// Find returns the page of gifts matching the criteria, sorted by
	// name ascending for deterministic pagination.
	Find(ctx context.Context, c search.Criteria) ([]models.Gift, error)
	// Count returns the total number of gifts matching the criteria,
	// ignoring pagination.
	Count(ctx context.Context, c search.Criteria) (int64, error)
	// FindAll returns every gift in the collection.
	FindAll(ctx context.Context) ([]models.Gift, error)
	// FindByID returns the gift with the given hex id, or nil when absent.
	FindByID(ctx context.Context, id string) (*models.Gift, error)
	// Insert stores a new gift and returns the assigned hex id.
	Insert(ctx context.Context, gift *models.Gift) (string, error)
}

type mongoGiftRepository struct {
	collection *mongo.Collection
}

// NewGiftRepository creates a GiftRepository backed by the gifts collection.
func NewGiftRepository(database *mongo.Database) GiftRepository {
	return &mongoGiftRepository{collection: database.Collection(db.GiftsCollection)}
}

func (r *mongoGiftRepository) Find(ctx context.Context, c search.Criteria) ([]models.Gift, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(c.Skip()).
		SetLimit(int64(c.Limit))

	cursor, err := r.collection.Find(ctx, c.Query(), opts)
	if err != nil {
		return nil, fmt.Errorf("find gifts: %w", err)
	}
	defer cursor.Close(ctx)

	gifts := []models.Gift{}
	if err := cursor.All(ctx, &gifts); err != nil {
		return nil, fmt.Errorf("decode gifts: %w", err)
	}
	return gifts, nil
}

func (r *mongoGiftRepository) Count(ctx context.Context, c search.Criteria) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, c.Query())
	if err != nil {
		return 0, fmt.Errorf("count gifts: %w", err)
	}
	return total, nil
}

func (r *mongoGiftRepository) FindAll(ctx context.Context) ([]models.Gift, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find gifts: %w", err)
	}
	defer cursor.Close(ctx)

	gifts := []models.Gift{}
	if err := cursor.All(ctx, &gifts); err != nil {
		return nil, fmt.Errorf("decode gifts: %w", err)
	}
	return gifts, nil
}

func (r *mongoGiftRepository) FindByID(ctx context.Context, id string) (*models.Gift, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var gift models.Gift
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&gift)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find gift by id: %w", err)
	}
	return &gift, nil
}

func (r *mongoGiftRepository) Insert(ctx context.Context, gift *models.Gift) (string, error) {
	result, err := r.collection.InsertOne(ctx, gift)
	if err != nil {
		return "", fmt.Errorf("insert gift: %w", err)
	}
	oid := result.InsertedID.(primitive.ObjectID)
	gift.ID = oid
	return oid.Hex(), nil
}
