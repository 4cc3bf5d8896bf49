package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/giftlink/giftlink-backend/internal/errs"
	"github.com/giftlink/giftlink-backend/internal/utils"
)

// writeServiceError maps service-layer sentinel errors to HTTP statuses.
// Anything unrecognized is an internal error and carries no detail out.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		utils.WriteErrorResponse(w, http.StatusBadRequest, errDetail(err, errs.ErrValidation), "")
	case errors.Is(err, errs.ErrConflict):
		utils.WriteErrorResponse(w, http.StatusConflict, errDetail(err, errs.ErrConflict), "")
	case errors.Is(err, errs.ErrUnauthorized):
		utils.WriteErrorResponse(w, http.StatusUnauthorized, errDetail(err, errs.ErrUnauthorized), "")
	case errors.Is(err, errs.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, errDetail(err, errs.ErrNotFound), "")
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", "")
	}
}

// errDetail strips the sentinel prefix so the client sees the short
// human-readable part only.
func errDetail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
