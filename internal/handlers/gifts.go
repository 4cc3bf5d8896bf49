package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/giftlink/giftlink-backend/internal/dto"
	"github.com/giftlink/giftlink-backend/internal/models"
	"github.com/giftlink/giftlink-backend/internal/service"
	"github.com/giftlink/giftlink-backend/internal/utils"
)

// GiftHandler handles gift listing HTTP requests
type GiftHandler struct {
	svc service.GiftService
}

// NewGiftHandler creates a new GiftHandler instance
func NewGiftHandler(svc service.GiftService) *GiftHandler {
	return &GiftHandler{svc: svc}
}

// Gifts dispatches the collection endpoint: GET lists, POST creates.
func (h *GiftHandler) Gifts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// list returns all gifts
// @Summary List gifts
// @Description Fetch all gift listings
// @Tags gifts
// @Produce json
// @Success 200 {array} models.Gift "Gift listings"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/gifts [get]
func (h *GiftHandler) list(w http.ResponseWriter, r *http.Request) {
	gifts, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, gifts)
}

// create stores a new gift listing
// @Summary Add a gift
// @Description Create a new gift listing; name and description are required
// @Tags gifts
// @Accept json
// @Produce json
// @Param request body models.Gift true "Gift listing"
// @Success 201 {object} dto.GiftCreateResponse "Gift created"
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/gifts [post]
func (h *GiftHandler) create(w http.ResponseWriter, r *http.Request) {
	var gift models.Gift
	if err := json.NewDecoder(r.Body).Decode(&gift); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	id, err := h.svc.Create(r.Context(), &gift)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.GiftCreateResponse{InsertedID: id})
}

// GetByID returns a single gift
// @Summary Get a gift
// @Description Fetch one gift listing by id
// @Tags gifts
// @Produce json
// @Param id path string true "Gift id"
// @Success 200 {object} models.Gift "Gift listing"
// @Failure 404 {object} dto.ErrorResponse "Gift not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/gifts/{id} [get]
func (h *GiftHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	gift, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, gift)
}
