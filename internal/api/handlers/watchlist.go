package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/fund-analytics/internal/api/request"
	"github.com/ndewijer/fund-analytics/internal/api/response"
	"github.com/ndewijer/fund-analytics/internal/apperrors"
	"github.com/ndewijer/fund-analytics/internal/service"
	"github.com/ndewijer/fund-analytics/internal/validation"
)

// WatchlistHandler handles HTTP requests for the watchlist.
type WatchlistHandler struct {
	watchlistService *service.WatchlistService
}

// NewWatchlistHandler creates a new WatchlistHandler with the provided service dependency.
func NewWatchlistHandler(watchlistService *service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistService: watchlistService,
	}
}

// Watchlist handles GET requests to list watched funds.
//
// Endpoint: GET /api/watchlist
// Response: 200 OK with array of WatchlistEntry
// Error: 500 Internal Server Error if retrieval fails
func (h *WatchlistHandler) Watchlist(w http.ResponseWriter, r *http.Request) {
	entries, err := h.watchlistService.GetWatchlist(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveWatchlist.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, entries)
}

// AddFund handles POST requests to watch a fund.
//
// Endpoint: POST /api/watchlist
// Request Body: AddWatchlistRequest
// Response: 201 Created with WatchlistEntry
// Error: 400 Bad Request if the body is invalid or validation fails
// Error: 409 Conflict if the fund is already watched
// Error: 500 Internal Server Error if the insert fails
func (h *WatchlistHandler) AddFund(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.AddWatchlistRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateAddWatchlist(req); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", verr.Fields)
			return
		}
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	entry, err := h.watchlistService.AddFund(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEntry) {
			response.RespondError(w, http.StatusConflict, "fund is already on the watchlist", err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateWatchlist.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, entry)
}

// RemoveFund handles DELETE requests to stop watching a fund.
//
// Endpoint: DELETE /api/watchlist/{code}
// Response: 204 No Content
// Error: 400 Bad Request if the code is invalid (validated by middleware)
// Error: 404 Not Found if the fund is not watched
// Error: 500 Internal Server Error if the delete fails
func (h *WatchlistHandler) RemoveFund(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.watchlistService.RemoveFund(r.Context(), code); err != nil {
		if errors.Is(err, apperrors.ErrFundNotWatched) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotWatched.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateWatchlist.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
