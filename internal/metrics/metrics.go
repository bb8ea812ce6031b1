// Package metrics holds the Prometheus collectors of the service.
// Collectors register on the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adcopy"

var (
	GenerationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_requests_total",
			Help:      "Generation requests by outcome",
		},
		[]string{"status"},
	)

	ProviderCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_calls_total",
			Help:      "Provider calls by provider and result",
		},
		[]string{"provider", "result"},
	)

	ProviderCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_call_duration_seconds",
			Help:      "Provider call duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"provider"},
	)

	NormalizerFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "normalizer_fallbacks_total",
			Help:      "Provider responses reconstructed from free text",
		},
		[]string{"channel"},
	)

	HistoryArchivedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_archived_total",
			Help:      "History entries moved out of the live set",
		},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-caller rate limiter",
		},
	)
)

// RecordGeneration counts one finished generation request.
func RecordGeneration(status string) {
	GenerationRequestsTotal.WithLabelValues(status).Inc()
}

// RecordProviderCall counts one provider call and observes its duration.
func RecordProviderCall(provider, result string, durationSec float64) {
	if result == "" {
		result = "unknown"
	}
	ProviderCallsTotal.WithLabelValues(provider, result).Inc()
	ProviderCallDuration.WithLabelValues(provider).Observe(durationSec)
}

// RecordFallback counts a normalizer fallback for channel.
func RecordFallback(channel string) {
	NormalizerFallbacksTotal.WithLabelValues(channel).Inc()
}

// RecordArchived adds n archived history entries.
func RecordArchived(n int64) {
	if n <= 0 {
		return
	}
	HistoryArchivedTotal.Add(float64(n))
}

// RecordHTTPRequest counts one served HTTP request.
func RecordHTTPRequest(method, route, status string) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
}

// RecordRateLimited counts one rejected request.
func RecordRateLimited() {
	RateLimitedTotal.Inc()
}
