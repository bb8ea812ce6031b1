package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/adcopy-backend/internal/domain"
	"github.com/heartmarshall/adcopy-backend/internal/service/history"
)

type historyService interface {
	ListHistory(ctx context.Context, input history.ListInput) ([]domain.HistoryEntry, error)
	ChannelStats(ctx context.Context) (map[domain.Channel]int, error)
}

// HistoryHandler serves the content history endpoints.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history")}
}

// List handles GET /api/v1/history?channel=&limit=.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	entries, err := h.svc.ListHistory(r.Context(), history.ListInput{
		Channel: r.URL.Query().Get("channel"),
		Limit:   limit,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toHistoryListResponse(entries))
}

// Stats handles GET /api/v1/history/stats.
func (h *HistoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.ChannelStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toChannelStatsResponse(stats))
}
