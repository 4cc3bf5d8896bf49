package service

import (
	"context"
	"fmt"

	"github.com/giftlink/giftlink-backend/internal/errs"
	"github.com/giftlink/giftlink-backend/internal/models"
	"github.com/giftlink/giftlink-backend/internal/repository"
	"github.com/giftlink/giftlink-backend/internal/search"
)

// SearchResult is one page of matching gifts plus the total match count
// across all pages.
type SearchResult struct {
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Gifts []models.Gift `json:"gifts"`
}

// GiftService defines gift listing, lookup, creation and search.
type GiftService interface {
	List(ctx context.Context) ([]models.Gift, error)
	Get(ctx context.Context, id string) (*models.Gift, error)
	Create(ctx context.Context, gift *models.Gift) (string, error)
	Search(ctx context.Context, c search.Criteria) (*SearchResult, error)
}

// GiftServiceImpl implements GiftService over the gift store adapter.
type GiftServiceImpl struct {
	gifts repository.GiftRepository
}

// NewGiftService constructs a GiftService.
func NewGiftService(gifts repository.GiftRepository) *GiftServiceImpl {
	return &GiftServiceImpl{gifts: gifts}
}

// List returns every gift in the collection.
func (s *GiftServiceImpl) List(ctx context.Context) ([]models.Gift, error) {
	return s.gifts.FindAll(ctx)
}

// Get returns a single gift by id.
func (s *GiftServiceImpl) Get(ctx context.Context, id string) (*models.Gift, error) {
	gift, err := s.gifts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if gift == nil {
		return nil, fmt.Errorf("%w: gift not found", errs.ErrNotFound)
	}
	return gift, nil
}

// Create validates and stores a new gift listing.
func (s *GiftServiceImpl) Create(ctx context.Context, gift *models.Gift) (string, error) {
	if gift.Name == "" || gift.Description == "" {
		return "", fmt.Errorf("%w: name and description are required", errs.ErrValidation)
	}
	return s.gifts.Insert(ctx, gift)
}

// Search applies the composed criteria and returns one page plus the total
// count for client-side page-count display. A skip past the end of the
// result set yields an empty page, not an error.
func (s *GiftServiceImpl) Search(ctx context.Context, c search.Criteria) (*SearchResult, error) {
	gifts, err := s.gifts.Find(ctx, c)
	if err != nil {
		return nil, err
	}
	total, err := s.gifts.Count(ctx, c)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Total: total, Page: c.Page, Limit: c.Limit, Gifts: gifts}, nil
}
