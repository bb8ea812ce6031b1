package generation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/adcopy-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/adcopy-backend/internal/domain"
)

// GenerateInput is a marketing brief. The owner comes from the context.
type GenerateInput struct {
	ProductName    string
	KeyBenefits    []string
	TargetAudience string
	Tone           domain.Tone
	Channels       []domain.Channel
	Model          string
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.ProductName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "productName", Message: "required"})
	} else if utf8.RuneCountInString(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "productName", Message: "max 100 characters"})
	}

	switch {
	case len(i.KeyBenefits) == 0:
		errs = append(errs, domain.FieldError{Field: "keyBenefits", Message: "at least 1 item required"})
	case len(i.KeyBenefits) > 10:
		errs = append(errs, domain.FieldError{Field: "keyBenefits", Message: "max 10 items"})
	}
	for idx, b := range i.KeyBenefits {
		field := fmt.Sprintf("keyBenefits[%d]", idx)
		b = strings.TrimSpace(b)
		if b == "" {
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
		} else if utf8.RuneCountInString(b) > 100 {
			errs = append(errs, domain.FieldError{Field: field, Message: "max 100 characters"})
		}
	}

	audience := strings.TrimSpace(i.TargetAudience)
	if audience == "" {
		errs = append(errs, domain.FieldError{Field: "targetAudience", Message: "required"})
	} else if utf8.RuneCountInString(audience) > 200 {
		errs = append(errs, domain.FieldError{Field: "targetAudience", Message: "max 200 characters"})
	}

	if !i.Tone.IsValid() {
		errs = append(errs, domain.FieldError{Field: "tone", Message: "invalid value"})
	}

	switch {
	case len(i.Channels) == 0:
		errs = append(errs, domain.FieldError{Field: "channels", Message: "at least 1 channel required"})
	case len(i.Channels) > len(domain.AllChannels):
		errs = append(errs, domain.FieldError{Field: "channels", Message: "max 6 channels"})
	}
	for idx, c := range i.Channels {
		if !c.IsValid() {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("channels[%d]", idx), Message: "invalid value"})
		}
	}

	model := strings.TrimSpace(i.Model)
	switch {
	case utf8.RuneCountInString(model) > 100:
		errs = append(errs, domain.FieldError{Field: "model", Message: "max 100 characters"})
	case model != "" && !llm.IsKnown(model):
		errs = append(errs, domain.FieldError{Field: "model", Message: "unsupported model"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i GenerateInput) normalized() GenerateInput {
	out := i
	out.ProductName = strings.TrimSpace(i.ProductName)
	out.TargetAudience = strings.TrimSpace(i.TargetAudience)
	out.Model = strings.TrimSpace(i.Model)
	out.KeyBenefits = make([]string, len(i.KeyBenefits))
	for idx, b := range i.KeyBenefits {
		out.KeyBenefits[idx] = strings.TrimSpace(b)
	}
	return out
}

// ListRequestsInput holds pagination parameters.
type ListRequestsInput struct {
	Page  int
	Limit int
}

// Validate checks all fields and collects all errors.
func (i ListRequestsInput) Validate() error {
	var errs []domain.FieldError
	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be positive"})
	}
	if i.Page > MaxPage {
		errs = append(errs, domain.FieldError{Field: "page", Message: "max 1000000"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 100"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PublishInput identifies the artifact to publish.
type PublishInput struct {
	ArtifactID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i PublishInput) Validate() error {
	if i.ArtifactID == uuid.Nil {
		return domain.NewValidationError("artifact_id", "required")
	}
	return nil
}
