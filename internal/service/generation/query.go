package generation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/adcopy-backend/internal/domain"
	"github.com/heartmarshall/adcopy-backend/pkg/ctxutil"
)

// GetContent returns the aggregate of a request owned by the caller.
// Requests of other users are reported as not found.
func (s *Service) GetContent(ctx context.Context, requestID uuid.UUID) (*domain.GenerationResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if requestID == uuid.Nil {
		return nil, domain.NewValidationError("request_id", "required")
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if req.UserID != userID {
		return nil, fmt.Errorf("content_request %s: %w", requestID, domain.ErrNotFound)
	}

	artifacts, err := s.artifacts.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}

	return domain.NewGenerationResult(req.ID, req.Model, artifacts, req.CreatedAt), nil
}

// ListRequests returns a page of the caller's requests with their content.
func (s *Service) ListRequests(ctx context.Context, input ListRequestsInput) (*RequestPage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	page, limit := input.Page, input.Limit
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}

	var (
		requests []domain.GenerationRequest
		total    int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		requests, err = s.requests.ListByUser(gctx, userID, limit, (page-1)*limit)
		if err != nil {
			return fmt.Errorf("list requests: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.requests.CountByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("count requests: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(requests))
	for i, r := range requests {
		ids[i] = r.ID
	}

	byRequest, err := s.artifacts.ListByRequests(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}

	items := make([]RequestWithContent, 0, len(requests))
	for _, r := range requests {
		arts := byRequest[r.ID]
		contents := make([]domain.ChannelContent, 0, len(arts))
		for _, a := range arts {
			contents = append(contents, domain.NewChannelContent(a))
		}
		items = append(items, RequestWithContent{Request: r, Contents: contents})
	}

	return &RequestPage{
		Requests:   items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}
