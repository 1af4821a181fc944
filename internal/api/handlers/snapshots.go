package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/fund-analytics/internal/api/response"
	"github.com/ndewijer/fund-analytics/internal/apperrors"
	"github.com/ndewijer/fund-analytics/internal/service"
)

// SnapshotHandler handles HTTP requests for archived fund analytics.
type SnapshotHandler struct {
	snapshotService *service.SnapshotService
}

// NewSnapshotHandler creates a new SnapshotHandler with the provided service dependency.
func NewSnapshotHandler(snapshotService *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: snapshotService,
	}
}

// Snapshots handles GET requests for a fund's stored snapshots, newest first.
//
// Endpoint: GET /api/fund/{code}/snapshots?limit=N
// Response: 200 OK with array of Snapshot
// Error: 400 Bad Request if limit is not a non-negative integer
// Error: 500 Internal Server Error if retrieval fails
func (h *SnapshotHandler) Snapshots(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	limit, err := parseLimit(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid limit", err.Error())
		return
	}

	snapshots, err := h.snapshotService.GetSnapshots(r.Context(), code, limit)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSnapshots.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshots)
}

// TakeSnapshot handles POST requests to compute and store a snapshot now.
//
// Endpoint: POST /api/fund/{code}/snapshots
// Response: 201 Created with Snapshot
// Error: 500 Internal Server Error if the snapshot cannot be stored
func (h *SnapshotHandler) TakeSnapshot(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	snapshot, err := h.snapshotService.TakeSnapshot(r.Context(), code)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCreateSnapshot.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, snapshot)
}
