package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/adcopy-backend/internal/config"
)

type originPolicy struct {
	any     bool
	allowed map[string]struct{}
}

func newOriginPolicy(list string) originPolicy {
	p := originPolicy{allowed: make(map[string]struct{})}
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			p.any = true
		default:
			p.allowed[o] = struct{}{}
		}
	}
	return p
}

func (p originPolicy) allows(origin string) bool {
	if p.any {
		return true
	}
	_, ok := p.allowed[origin]
	return ok
}

// CORS answers preflight requests itself and decorates every other response
// from an allowed origin. The request ID header is exposed to browsers.
func CORS(cfg config.CORSConfig) Middleware {
	policy := newOriginPolicy(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			if origin := r.Header.Get("Origin"); origin != "" && policy.allows(origin) {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", RequestIDHeader)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
