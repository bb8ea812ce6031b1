package middleware

import (
	"net/http"
	"strconv"

	"github.com/heartmarshall/adcopy-backend/internal/metrics"
)

// Metrics counts requests by method, matched route pattern and status.
// Handlers between it and the ServeMux must not replace the request, or
// the matched pattern is lost.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			metrics.RecordHTTPRequest(r.Method, r.Pattern, strconv.Itoa(sw.status))
		})
	}
}
