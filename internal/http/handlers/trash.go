package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tooldeck/tooldeck-api/internal/service"
)

// TrashSweeper is the trash service surface the sweep handler needs.
type TrashSweeper interface {
	SweepExpiredTrash(ctx context.Context) (*service.SweepReport, error)
}

// TrashHandler exposes the manual trash sweep. It is a plain chi handler
// rather than a huma operation: the admin front-end consumes a fixed JSON
// envelope with a success flag, also on errors, and that shape predates this
// service.
type TrashHandler struct {
	trash  TrashSweeper
	logger *slog.Logger
}

// NewTrashHandler creates a new trash handler.
func NewTrashHandler(trash TrashSweeper, logger *slog.Logger) *TrashHandler {
	return &TrashHandler{trash: trash, logger: logger.With("component", "trash_handler")}
}

type sweepResponse struct {
	Success bool `json:"success"`
	*service.SweepReport
}

type sweepErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Sweep runs one trash sweep and reports what was purged.
func (h *TrashHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	report, err := h.trash.SweepExpiredTrash(r.Context())
	if err != nil {
		h.logger.Error("manual trash sweep failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(sweepErrorResponse{Success: false, Error: err.Error()})
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(sweepResponse{Success: true, SweepReport: report})
}
