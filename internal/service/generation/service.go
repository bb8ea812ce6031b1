// Package generation runs the multi-channel ad copy pipeline: prompt
// assembly, provider dispatch, normalization and atomic persistence.
package generation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/adcopy-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/adcopy-backend/internal/domain"
	"github.com/heartmarshall/adcopy-backend/internal/prompt"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit far from integer overflow.
	MaxPage = 1_000_000

	defaultHistoryContextSize = 10
	defaultHistoryKeepLast    = 50
	defaultMaxVariations      = 3
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type requestRepo interface {
	Create(ctx context.Context, req domain.GenerationRequest) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus, at time.Time) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GenerationRequest, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.GenerationRequest, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type artifactRepo interface {
	Create(ctx context.Context, a domain.Artifact) error
	MarkPublished(ctx context.Context, id, userID uuid.UUID, at time.Time) (*domain.Artifact, error)
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.Artifact, error)
	ListByRequests(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]domain.Artifact, error)
}

type auditRepo interface {
	Create(ctx context.Context, e domain.AuditEntry) error
}

type historyRepo interface {
	Append(ctx context.Context, e domain.HistoryEntry) error
}

type historyService interface {
	RecentContext(ctx context.Context, userID uuid.UUID, n int) ([]string, error)
	ArchiveBeyond(ctx context.Context, userID uuid.UUID, keepLast int) (int64, error)
}

type generator interface {
	Generate(ctx context.Context, p llm.Prompt, model string) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds orchestration parameters. A zero HistoryContextSize or
// PromptExamples disables few-shot examples.
type Config struct {
	DefaultModel       string
	HistoryContextSize int
	PromptExamples     int
	HistoryKeepLast    int
	MaxVariations      int
}

// DefaultConfig returns the stock orchestration parameters.
func DefaultConfig() Config {
	return Config{
		DefaultModel:       llm.DefaultModel,
		HistoryContextSize: defaultHistoryContextSize,
		PromptExamples:     prompt.MaxExamples,
		HistoryKeepLast:    defaultHistoryKeepLast,
		MaxVariations:      defaultMaxVariations,
	}
}

func (c Config) withDefaults() Config {
	if c.DefaultModel == "" {
		c.DefaultModel = llm.DefaultModel
	}
	if c.HistoryContextSize < 0 {
		c.HistoryContextSize = 0
	}
	if c.PromptExamples < 0 {
		c.PromptExamples = 0
	}
	if c.PromptExamples > prompt.MaxExamples {
		c.PromptExamples = prompt.MaxExamples
	}
	if c.HistoryKeepLast <= 0 {
		c.HistoryKeepLast = defaultHistoryKeepLast
	}
	if c.MaxVariations <= 0 {
		c.MaxVariations = defaultMaxVariations
	}
	return c
}

// Service orchestrates content generation and its read paths.
type Service struct {
	log       *slog.Logger
	tx        txManager
	users     userRepo
	requests  requestRepo
	artifacts artifactRepo
	audit     auditRepo
	history   historyRepo
	recent    historyService
	llm       generator
	cfg       Config
	now       func() time.Time
}

// NewService creates a new generation service.
func NewService(
	log *slog.Logger,
	tx txManager,
	users userRepo,
	requests requestRepo,
	artifacts artifactRepo,
	audit auditRepo,
	history historyRepo,
	recent historyService,
	llm generator,
	cfg Config,
) *Service {
	return &Service{
		log:       log.With("service", "generation"),
		tx:        tx,
		users:     users,
		requests:  requests,
		artifacts: artifacts,
		audit:     audit,
		history:   history,
		recent:    recent,
		llm:       llm,
		cfg:       cfg.withDefaults(),
		now:       storeNow,
	}
}

// storeNow is the current time at the precision PostgreSQL keeps, so values
// returned before and after a round trip compare equal.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
