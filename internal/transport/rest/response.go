package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/adcopy-backend/internal/domain"
	"github.com/heartmarshall/adcopy-backend/pkg/ctxutil"
)

type errorResponse struct {
	Error   string        `json:"error"`
	Details []fieldDetail `json:"details,omitempty"`
}

type fieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps service errors to HTTP responses. Internal details are
// logged, never written to the client.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		details := make([]fieldDetail, 0, len(verr.Errors))
		for _, fe := range verr.Errors {
			details = append(details, fieldDetail{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Details: details})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation failed")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrProviderFailure):
		logError(log, r, slog.LevelWarn, "provider failure", err)
		writeError(w, http.StatusBadGateway, "content generation failed")
	default:
		logError(log, r, slog.LevelError, "internal error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func logError(log *slog.Logger, r *http.Request, level slog.Level, msg string, err error) {
	attrs := append([]slog.Attr{slog.String("error", err.Error())}, ctxutil.LogAttrs(r.Context())...)
	log.LogAttrs(r.Context(), level, msg, attrs...)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	return dec.Decode(v)
}

const maxBodyBytes = 1 << 20
