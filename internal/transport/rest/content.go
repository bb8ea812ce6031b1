package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/adcopy-backend/internal/domain"
	"github.com/heartmarshall/adcopy-backend/internal/service/generation"
)

type generationService interface {
	Generate(ctx context.Context, input generation.GenerateInput) (*domain.GenerationResult, error)
	GenerateVariations(ctx context.Context, input generation.GenerateInput) ([]*domain.GenerationResult, error)
	GetContent(ctx context.Context, requestID uuid.UUID) (*domain.GenerationResult, error)
	ListRequests(ctx context.Context, input generation.ListRequestsInput) (*generation.RequestPage, error)
	Publish(ctx context.Context, input generation.PublishInput) (*domain.ChannelContent, error)
}

// ContentHandler serves content request and artifact endpoints.
type ContentHandler struct {
	svc generationService
	log *slog.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(svc generationService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{svc: svc, log: logger.With("handler", "content")}
}

// Generate handles POST /api/v1/content-requests.
func (h *ContentHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Generate(r.Context(), req.toInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// Variations handles POST /api/v1/content-requests/variations.
func (h *ContentHandler) Variations(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	results, err := h.svc.GenerateVariations(r.Context(), req.toInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, variationsResponse{Variations: results, Total: len(results)})
}

// List handles GET /api/v1/content-requests?page=&limit=.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(w, r, "page")
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	result, err := h.svc.ListRequests(r.Context(), generation.ListRequestsInput{Page: page, Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRequestPageResponse(result))
}

// Get handles GET /api/v1/content-requests/{id}.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.svc.GetContent(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Publish handles POST /api/v1/artifacts/{id}/publish.
func (h *ContentHandler) Publish(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	content, err := h.svc.Publish(r.Context(), generation.PublishInput{ArtifactID: id})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, content)
}

// queryInt reads an optional integer query parameter. A missing value is 0.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "validation failed",
			Details: []fieldDetail{{Field: name, Message: "must be an integer"}},
		})
		return 0, false
	}
	return n, true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "validation failed",
			Details: []fieldDetail{{Field: name, Message: "must be a UUID"}},
		})
		return uuid.Nil, false
	}
	return id, true
}
