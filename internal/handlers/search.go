package handlers

import (
	"net/http"

	"github.com/giftlink/giftlink-backend/internal/search"
	"github.com/giftlink/giftlink-backend/internal/service"
	"github.com/giftlink/giftlink-backend/internal/utils"
)

// SearchHandler handles the gift search endpoint
type SearchHandler struct {
	svc service.GiftService
}

// NewSearchHandler creates a new SearchHandler instance
func NewSearchHandler(svc service.GiftService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search filters and paginates gift listings
// @Summary Search gifts
// @Description Filter gifts by name substring, category, condition and maximum age; paginated
// @Tags search
// @Produce json
// @Param name query string false "Case-insensitive substring of the gift name"
// @Param category query string false "Exact category"
// @Param condition query string false "Exact condition"
// @Param age_years query int false "Maximum age in years"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} service.SearchResult "One page of matches plus total count"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/search [get]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	res, err := h.svc.Search(r.Context(), search.Parse(r.URL.Query()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, res)
}
