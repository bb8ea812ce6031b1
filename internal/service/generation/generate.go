package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/adcopy-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/adcopy-backend/internal/domain"
	"github.com/heartmarshall/adcopy-backend/internal/metrics"
	"github.com/heartmarshall/adcopy-backend/internal/prompt"
	"github.com/heartmarshall/adcopy-backend/pkg/ctxutil"
)

// exchange is one provider round trip, kept for the audit trail.
type exchange struct {
	Channel domain.Channel
	System  string
	User    string
	Raw     string
}

// Generate produces copy for every channel of the brief. The request, its
// artifacts, history entries and audit entry are committed together or not
// at all.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*domain.GenerationResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		metrics.RecordGeneration("invalid")
		return nil, err
	}
	in := input.normalized()
	if in.Model == "" {
		in.Model = s.cfg.DefaultModel
	}
	// Record the model that is actually called.
	_, in.Model = llm.Resolve(in.Model)

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		metrics.RecordGeneration("failed")
		return nil, fmt.Errorf("get user: %w", err)
	}

	examples := s.historyExamples(ctx, userID)

	now := s.now()
	req := domain.GenerationRequest{
		ID:             uuid.New(),
		UserID:         userID,
		ProductName:    in.ProductName,
		KeyBenefits:    in.KeyBenefits,
		TargetAudience: in.TargetAudience,
		Tone:           in.Tone,
		Channels:       in.Channels,
		Model:          in.Model,
		Status:         domain.RequestStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	start := time.Now()
	var artifacts []domain.Artifact

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.requests.Create(ctx, req); err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		generated, exchanges, err := s.generateChannels(ctx, req, user.BrandContext(), examples)
		if err != nil {
			return err
		}

		if err := s.writeAudit(ctx, req, exchanges); err != nil {
			return err
		}

		if err := s.requests.UpdateStatus(ctx, req.ID, domain.RequestStatusGenerated, s.now()); err != nil {
			return fmt.Errorf("update request status: %w", err)
		}

		artifacts = generated
		return nil
	})
	if err != nil {
		metrics.RecordGeneration("failed")
		s.log.ErrorContext(ctx, "generation rolled back",
			slog.String("request_id", req.ID.String()),
			slog.String("user_id", userID.String()),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	metrics.RecordGeneration("generated")

	s.log.InfoContext(ctx, "content generated",
		slog.String("request_id", req.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("channels", len(artifacts)),
		slog.Duration("duration", time.Since(start)),
	)

	if _, err := s.recent.ArchiveBeyond(ctx, userID, s.cfg.HistoryKeepLast); err != nil {
		s.log.WarnContext(ctx, "history archival failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}

	return domain.NewGenerationResult(req.ID, req.Model, artifacts, now), nil
}

// historyExamples returns the rendered history quoted in prompts. History
// is optional context: a failed lookup yields no examples.
func (s *Service) historyExamples(ctx context.Context, userID uuid.UUID) []string {
	if s.cfg.HistoryContextSize == 0 || s.cfg.PromptExamples == 0 {
		return nil
	}

	examples, err := s.recent.RecentContext(ctx, userID, s.cfg.HistoryContextSize)
	if err != nil {
		s.log.WarnContext(ctx, "history context unavailable",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return nil
	}

	if len(examples) > s.cfg.PromptExamples {
		examples = examples[:s.cfg.PromptExamples]
	}
	return examples
}

// generateChannels folds over the channels in order. The first error stops
// the fold.
func (s *Service) generateChannels(
	ctx context.Context,
	req domain.GenerationRequest,
	brandContext string,
	examples []string,
) ([]domain.Artifact, []exchange, error) {
	artifacts := make([]domain.Artifact, 0, len(req.Channels))
	exchanges := make([]exchange, 0, len(req.Channels))

	for pos, channel := range req.Channels {
		start := time.Now()

		a, ex, err := s.generateChannel(ctx, req, pos, channel, brandContext, examples)
		if err != nil {
			s.log.ErrorContext(ctx, "channel generation failed",
				slog.String("request_id", req.ID.String()),
				slog.String("channel", channel.String()),
				slog.Duration("duration", time.Since(start)),
				slog.String("error", err.Error()),
			)
			return nil, nil, fmt.Errorf("channel %s: %w", channel, err)
		}

		artifacts = append(artifacts, a)
		exchanges = append(exchanges, ex)
	}

	return artifacts, exchanges, nil
}

func (s *Service) generateChannel(
	ctx context.Context,
	req domain.GenerationRequest,
	pos int,
	channel domain.Channel,
	brandContext string,
	examples []string,
) (domain.Artifact, exchange, error) {
	p := prompt.Build(prompt.Input{
		ProductName:    req.ProductName,
		KeyBenefits:    req.KeyBenefits,
		TargetAudience: req.TargetAudience,
		Tone:           req.Tone,
		Channel:        channel,
		Model:          req.Model,
		BrandContext:   brandContext,
		Examples:       examples,
	})

	raw, err := s.llm.Generate(ctx, p, req.Model)
	if err != nil {
		return domain.Artifact{}, exchange{}, err
	}

	now := s.now()
	nc, err := Normalize(raw, req.ID, channel, req.Tone, req.Model, now)
	if err != nil {
		return domain.Artifact{}, exchange{}, fmt.Errorf("normalize: %w", err)
	}
	if nc.Fallback {
		metrics.RecordFallback(channel.String())
		s.log.WarnContext(ctx, "provider output is not a JSON object, used fallback",
			slog.String("request_id", req.ID.String()),
			slog.String("channel", channel.String()),
		)
	}

	a := domain.Artifact{
		ID:          uuid.New(),
		RequestID:   req.ID,
		UserID:      req.UserID,
		Channel:     channel,
		Position:    pos,
		Content:     nc.Content,
		Model:       req.Model,
		ContentType: nc.ContentType,
		Status:      nc.Status,
		Version:     domain.InitialArtifactVersion,
		RawResponse: raw,
		CreatedAt:   now,
	}
	if err := s.artifacts.Create(ctx, a); err != nil {
		return domain.Artifact{}, exchange{}, fmt.Errorf("create artifact: %w", err)
	}

	if err := s.history.Append(ctx, domain.HistoryEntry{
		ID:          uuid.New(),
		UserID:      req.UserID,
		RequestID:   req.ID,
		Channel:     channel,
		ProductName: req.ProductName,
		KeyBenefits: req.KeyBenefits,
		Tone:        nc.Content.Tone,
		Content:     nc.Content,
		Model:       req.Model,
		CreatedAt:   now,
	}); err != nil {
		return domain.Artifact{}, exchange{}, fmt.Errorf("append history: %w", err)
	}

	return a, exchange{Channel: channel, System: p.System, User: p.User, Raw: raw}, nil
}

type promptRecord struct {
	Channel domain.Channel `json:"channel"`
	System  string         `json:"system"`
	User    string         `json:"user"`
}

type responseRecord struct {
	Channel domain.Channel `json:"channel"`
	Raw     string         `json:"raw"`
}

func (s *Service) writeAudit(ctx context.Context, req domain.GenerationRequest, exchanges []exchange) error {
	prompts := make([]promptRecord, 0, len(exchanges))
	responses := make([]responseRecord, 0, len(exchanges))
	for _, ex := range exchanges {
		prompts = append(prompts, promptRecord{Channel: ex.Channel, System: ex.System, User: ex.User})
		responses = append(responses, responseRecord{Channel: ex.Channel, Raw: ex.Raw})
	}

	promptJSON, err := json.Marshal(prompts)
	if err != nil {
		return fmt.Errorf("marshal audit prompts: %w", err)
	}
	responseJSON, err := json.Marshal(responses)
	if err != nil {
		return fmt.Errorf("marshal audit responses: %w", err)
	}

	if err := s.audit.Create(ctx, domain.AuditEntry{
		ID:        uuid.New(),
		RequestID: req.ID,
		Role:      domain.MessageRoleUser,
		Message:   fmt.Sprintf("Product: %s, Target: %s", req.ProductName, req.TargetAudience),
		Prompt:    string(promptJSON),
		Response:  string(responseJSON),
		CreatedAt: s.now(),
	}); err != nil {
		return fmt.Errorf("create audit entry: %w", err)
	}
	return nil
}
