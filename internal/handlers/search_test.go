package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftlink/giftlink-backend/internal/models"
	"github.com/giftlink/giftlink-backend/internal/search"
	"github.com/giftlink/giftlink-backend/internal/service"
)

type fakeGiftService struct {
	listFn   func(ctx context.Context) ([]models.Gift, error)
	getFn    func(ctx context.Context, id string) (*models.Gift, error)
	createFn func(ctx context.Context, gift *models.Gift) (string, error)
	searchFn func(ctx context.Context, c search.Criteria) (*service.SearchResult, error)
}

var _ service.GiftService = (*fakeGiftService)(nil)

func (f *fakeGiftService) List(ctx context.Context) ([]models.Gift, error) {
	return f.listFn(ctx)
}

func (f *fakeGiftService) Get(ctx context.Context, id string) (*models.Gift, error) {
	return f.getFn(ctx, id)
}

func (f *fakeGiftService) Create(ctx context.Context, gift *models.Gift) (string, error) {
	return f.createFn(ctx, gift)
}

func (f *fakeGiftService) Search(ctx context.Context, c search.Criteria) (*service.SearchResult, error) {
	return f.searchFn(ctx, c)
}

func TestSearchHandlerParsesQuery(t *testing.T) {
	t.Parallel()

	var got search.Criteria
	svc := &fakeGiftService{
		searchFn: func(_ context.Context, c search.Criteria) (*service.SearchResult, error) {
			got = c
			return &service.SearchResult{Total: 1, Page: c.Page, Limit: c.Limit,
				Gifts: []models.Gift{{Name: "Wooden Chair"}}}, nil
		},
	}
	h := NewSearchHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/search?name=chair&category=Furniture&page=2&limit=5", nil)
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "chair", got.Name)
	assert.Equal(t, "Furniture", got.Category)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 5, got.Limit)

	var res struct {
		Total int           `json:"total"`
		Page  int           `json:"page"`
		Limit int           `json:"limit"`
		Gifts []models.Gift `json:"gifts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 5, res.Limit)
	require.Len(t, res.Gifts, 1)
	assert.Equal(t, "Wooden Chair", res.Gifts[0].Name)
}

func TestSearchHandlerEmptyPage(t *testing.T) {
	t.Parallel()

	svc := &fakeGiftService{
		searchFn: func(_ context.Context, c search.Criteria) (*service.SearchResult, error) {
			return &service.SearchResult{Total: 12, Page: c.Page, Limit: c.Limit, Gifts: []models.Gift{}}, nil
		},
	}
	h := NewSearchHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/search?page=100", nil)
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"gifts":[]`)
}

func TestSearchHandlerMethodNotAllowed(t *testing.T) {
	t.Parallel()

	h := NewSearchHandler(&fakeGiftService{})
	req := httptest.NewRequest(http.MethodPost, "/api/search", nil)
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestGiftCreateHandler(t *testing.T) {
	t.Parallel()

	svc := &fakeGiftService{
		createFn: func(_ context.Context, gift *models.Gift) (string, error) {
			require.Equal(t, "Oak Table", gift.Name)
			return "507f1f77bcf86cd799439011", nil
		},
	}
	h := NewGiftHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/gifts",
		strings.NewReader(`{"name":"Oak Table","description":"Solid oak dining table"}`))
	rec := httptest.NewRecorder()

	h.Gifts(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var res map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "507f1f77bcf86cd799439011", res["insertedId"])
}

func TestGiftListHandler(t *testing.T) {
	t.Parallel()

	svc := &fakeGiftService{
		listFn: func(context.Context) ([]models.Gift, error) {
			return []models.Gift{{Name: "Lamp"}, {Name: "Bookshelf"}}, nil
		},
	}
	h := NewGiftHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/gifts", nil)
	rec := httptest.NewRecorder()

	h.Gifts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res []models.Gift
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res, 2)
	assert.Equal(t, "Lamp", res[0].Name)
}
