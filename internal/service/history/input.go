package history

import (
	"strings"

	"github.com/heartmarshall/adcopy-backend/internal/domain"
)

// ListInput holds the parameters for listing history.
type ListInput struct {
	Channel string
	Limit   int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if ch := strings.TrimSpace(i.Channel); ch != "" {
		if _, ok := domain.ParseChannel(ch); !ok {
			errs = append(errs, domain.FieldError{Field: "channel", Message: "unknown channel"})
		}
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 100"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
