package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/adcopy-backend/internal/metrics"
)

// Router dispatches a generation to the client serving the requested model.
type Router struct {
	clients map[Provider]Client
	timeout time.Duration
	log     *slog.Logger
}

// NewRouter creates a Router. Providers missing from clients fail with
// KindNotConfigured. A non-positive timeout leaves the caller's deadline alone.
func NewRouter(log *slog.Logger, clients map[Provider]Client, timeout time.Duration) *Router {
	registered := make(map[Provider]Client, len(clients))
	for p, c := range clients {
		if c != nil {
			registered[p] = c
		}
	}
	return &Router{
		clients: registered,
		timeout: timeout,
		log:     log.With("adapter", "llm_router"),
	}
}

// Generate resolves model and calls the matching provider once.
func (r *Router) Generate(ctx context.Context, p Prompt, model string) (string, error) {
	provider, concrete := Resolve(model)

	client, ok := r.clients[provider]
	if !ok {
		metrics.RecordProviderCall(provider.String(), string(KindNotConfigured), 0)
		return "", &Error{Provider: provider, Model: concrete, Kind: KindNotConfigured, Err: ErrNotConfigured}
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := client.Generate(ctx, p, concrete)
	elapsed := time.Since(start)

	result := "success"
	if err != nil {
		if KindOf(err) == "" {
			err = TransportError(provider, concrete, err)
		}
		result = string(KindOf(err))
		r.log.WarnContext(ctx, "provider call failed",
			slog.String("provider", provider.String()),
			slog.String("model", concrete),
			slog.Duration("duration", elapsed),
			slog.String("error", err.Error()),
		)
	}
	metrics.RecordProviderCall(provider.String(), result, elapsed.Seconds())

	return text, err
}

// Has reports whether a client is registered for provider.
func (r *Router) Has(provider Provider) bool {
	_, ok := r.clients[provider]
	return ok
}
