package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/adcopy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/adcopy-backend/internal/adapter/postgres/artifact"
	"github.com/heartmarshall/adcopy-backend/internal/adapter/postgres/audit"
	historyrepo "github.com/heartmarshall/adcopy-backend/internal/adapter/postgres/history"
	"github.com/heartmarshall/adcopy-backend/internal/adapter/postgres/request"
	"github.com/heartmarshall/adcopy-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/adcopy-backend/internal/auth"
	"github.com/heartmarshall/adcopy-backend/internal/config"
	"github.com/heartmarshall/adcopy-backend/internal/service/generation"
	"github.com/heartmarshall/adcopy-backend/internal/service/history"
	"github.com/heartmarshall/adcopy-backend/internal/transport/middleware"
	"github.com/heartmarshall/adcopy-backend/internal/transport/rest"
)

// container owns the services and handlers of one server process.
type container struct {
	cfg     *config.Config
	log     *slog.Logger
	pool    *pgxpool.Pool
	locks   *Locks
	jwt     *auth.JWTManager
	limiter *middleware.RateLimiter

	generation *generation.Service
	history    *history.Service
}

func newContainer(cfg *config.Config, pool *pgxpool.Pool, locks *Locks, logger *slog.Logger) *container {
	txm := postgres.NewTxManager(pool)

	users := user.New(pool)
	requests := request.New(pool)
	artifacts := artifact.New(pool)
	audits := audit.New(pool)
	entries := historyrepo.New(pool)

	historySvc := history.NewService(logger, entries, locks)

	genSvc := generation.NewService(
		logger, txm,
		users, requests, artifacts, audits, entries,
		historySvc,
		NewLLMRouter(cfg.AI, logger),
		GenerationConfig(cfg),
	)

	return &container{
		cfg:        cfg,
		log:        logger,
		pool:       pool,
		locks:      locks,
		jwt:        auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		limiter:    middleware.NewRateLimiter(time.Minute),
		generation: genSvc,
		history:    historySvc,
	}
}

// GenerationConfig maps application config onto the orchestrator settings.
func GenerationConfig(cfg *config.Config) generation.Config {
	return generation.Config{
		DefaultModel:       cfg.AI.DefaultModel,
		HistoryContextSize: cfg.Generation.HistoryContextSize,
		PromptExamples:     cfg.Generation.PromptExamples,
		HistoryKeepLast:    cfg.Generation.HistoryKeepLast,
		MaxVariations:      cfg.Generation.MaxVariations,
	}
}

// Handler builds the full middleware chain around the API mux.
func (c *container) Handler() http.Handler {
	var extra []rest.Component
	if c.locks.Redis != nil {
		extra = append(extra, rest.Component{Name: "redis", Pinger: c.locks.Redis})
	}

	mux := rest.NewRouter(rest.Routes{
		Health:        rest.NewHealthHandler(c.pool, BuildVersion(), extra...),
		Content:       rest.NewContentHandler(c.generation, c.log),
		History:       rest.NewHistoryHandler(c.history, c.log),
		Metrics:       promhttp.Handler(),
		Auth:          middleware.Auth(c.jwt),
		GenerateLimit: c.limiter.Limit(c.cfg.Server.GenerationRateLimit),
	})

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(c.log),
		middleware.Logger(c.log),
		middleware.Metrics(),
		middleware.CORS(c.cfg.CORS),
	)(mux)
}

// Close stops background workers.
func (c *container) Close() {
	c.limiter.Stop()
}
