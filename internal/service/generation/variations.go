package generation

import (
	"context"
	"fmt"

	"github.com/heartmarshall/adcopy-backend/internal/domain"
)

// GenerateVariations runs Generate min(len(channels), MaxVariations) times.
// Each run commits on its own; the first failure stops the remaining runs.
func (s *Service) GenerateVariations(ctx context.Context, input GenerateInput) ([]*domain.GenerationResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	runs := min(len(input.Channels), s.cfg.MaxVariations)
	results := make([]*domain.GenerationResult, 0, runs)

	for i := range runs {
		res, err := s.Generate(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("variation %d: %w", i+1, err)
		}
		results = append(results, res)
	}

	return results, nil
}
