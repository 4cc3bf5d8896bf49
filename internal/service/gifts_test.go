package service

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/giftlink/giftlink-backend/internal/errs"
	"github.com/giftlink/giftlink-backend/internal/models"
	"github.com/giftlink/giftlink-backend/internal/repository"
	"github.com/giftlink/giftlink-backend/internal/search"
)

// fakeGifts applies criteria in memory with the same semantics the store
// provides: name substring (case-insensitive), exact category/condition,
// age upper bound, name-ascending sort, then skip/limit.
type fakeGifts struct {
	gifts []models.Gift
}

var _ repository.GiftRepository = (*fakeGifts)(nil)

func (f *fakeGifts) matching(c search.Criteria) []models.Gift {
	out := []models.Gift{}
	for _, g := range f.gifts {
		if c.Name != "" && !strings.Contains(strings.ToLower(g.Name), strings.ToLower(c.Name)) {
			continue
		}
		if c.Category != "" && g.Category != c.Category {
			continue
		}
		if c.Condition != "" && g.Condition != c.Condition {
			continue
		}
		if c.MaxAgeYears != nil && g.AgeYears > *c.MaxAgeYears {
			continue
		}
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (f *fakeGifts) Find(_ context.Context, c search.Criteria) ([]models.Gift, error) {
	matched := f.matching(c)
	skip := int(c.Skip())
	if skip >= len(matched) {
		return []models.Gift{}, nil
	}
	end := skip + c.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], nil
}

func (f *fakeGifts) Count(_ context.Context, c search.Criteria) (int64, error) {
	return int64(len(f.matching(c))), nil
}

func (f *fakeGifts) FindAll(_ context.Context) ([]models.Gift, error) {
	return append([]models.Gift{}, f.gifts...), nil
}

func (f *fakeGifts) FindByID(_ context.Context, id string) (*models.Gift, error) {
	for _, g := range f.gifts {
		if g.ID.Hex() == id {
			cpy := g
			return &cpy, nil
		}
	}
	return nil, nil
}

func (f *fakeGifts) Insert(_ context.Context, gift *models.Gift) (string, error) {
	gift.ID = primitive.NewObjectID()
	f.gifts = append(f.gifts, *gift)
	return gift.ID.Hex(), nil
}

func seededToyStore(t *testing.T) *fakeGifts {
	t.Helper()
	store := &fakeGifts{}
	// 12 toys named toy-01 .. toy-12 plus unrelated furniture.
	for i := 1; i <= 12; i++ {
		_, err := store.Insert(context.Background(), &models.Gift{
			Name:        fmt.Sprintf("toy-%02d", i),
			Description: "a well-loved toy",
			Category:    "toys",
			Condition:   "good",
			AgeYears:    i % 5,
		})
		require.NoError(t, err)
	}
	for i := 1; i <= 3; i++ {
		_, err := store.Insert(context.Background(), &models.Gift{
			Name:        fmt.Sprintf("chair-%02d", i),
			Description: "a sturdy chair",
			Category:    "furniture",
			Condition:   "fair",
			AgeYears:    10,
		})
		require.NoError(t, err)
	}
	return store
}

func TestSearch_PaginationWindow(t *testing.T) {
	t.Parallel()

	svc := NewGiftService(seededToyStore(t))

	q := url.Values{}
	q.Set("category", "toys")
	q.Set("page", "2")
	q.Set("limit", "5")

	res, err := svc.Search(context.Background(), search.Parse(q))
	require.NoError(t, err)

	assert.Equal(t, int64(12), res.Total)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 5, res.Limit)
	require.Len(t, res.Gifts, 5)

	// The 6th through 10th toys by name order.
	for i, g := range res.Gifts {
		assert.Equal(t, fmt.Sprintf("toy-%02d", i+6), g.Name)
	}
}

func TestSearch_PageBeyondEnd(t *testing.T) {
	t.Parallel()

	svc := NewGiftService(seededToyStore(t))

	q := url.Values{}
	q.Set("category", "toys")
	q.Set("page", "100")
	q.Set("limit", "10")

	res, err := svc.Search(context.Background(), search.Parse(q))
	require.NoError(t, err)

	assert.Equal(t, int64(12), res.Total)
	assert.Empty(t, res.Gifts)
}

func TestSearch_NonNumericAgeIgnored(t *testing.T) {
	t.Parallel()

	svc := NewGiftService(seededToyStore(t))

	q := url.Values{}
	q.Set("category", "toys")
	q.Set("age_years", "abc")
	q.Set("limit", "20")

	res, err := svc.Search(context.Background(), search.Parse(q))
	require.NoError(t, err)
	assert.Equal(t, int64(12), res.Total, "non-numeric age filter is dropped, not applied")
}

func TestSearch_AgeUpperBound(t *testing.T) {
	t.Parallel()

	svc := NewGiftService(seededToyStore(t))

	q := url.Values{}
	q.Set("age_years", "4")
	q.Set("limit", "20")

	res, err := svc.Search(context.Background(), search.Parse(q))
	require.NoError(t, err)
	assert.Equal(t, int64(12), res.Total, "all toys are at most 4 years old, chairs are older")
	for _, g := range res.Gifts {
		assert.LessOrEqual(t, g.AgeYears, 4)
	}
}

func TestSearch_NameSubstringCaseInsensitive(t *testing.T) {
	t.Parallel()

	store := &fakeGifts{}
	for _, name := range []string{"Wooden Lamp", "Desk lamp", "Bookshelf"} {
		_, err := store.Insert(context.Background(), &models.Gift{Name: name, Description: "d"})
		require.NoError(t, err)
	}
	svc := NewGiftService(store)

	q := url.Values{}
	q.Set("name", "LAMP")

	res, err := svc.Search(context.Background(), search.Parse(q))
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)
	require.Len(t, res.Gifts, 2)
	assert.Equal(t, "Desk lamp", res.Gifts[0].Name)
	assert.Equal(t, "Wooden Lamp", res.Gifts[1].Name)
}

func TestGet(t *testing.T) {
	t.Parallel()

	store := seededToyStore(t)
	svc := NewGiftService(store)

	want := store.gifts[0]
	got, err := svc.Get(context.Background(), want.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, want.Name, got.Name)

	_, err = svc.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, errs.ErrNotFound)

	// A malformed id behaves like a missing document.
	_, err = svc.Get(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()

	svc := NewGiftService(&fakeGifts{})

	_, err := svc.Create(context.Background(), &models.Gift{Description: "no name"})
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.Create(context.Background(), &models.Gift{Name: "no description"})
	assert.ErrorIs(t, err, errs.ErrValidation)

	id, err := svc.Create(context.Background(), &models.Gift{Name: "Lamp", Description: "desk lamp"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}
