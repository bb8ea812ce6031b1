package llm

import (
	"errors"
	"fmt"

	"github.com/heartmarshall/adcopy-backend/internal/domain"
)

// Kind classifies a provider failure.
type Kind string

const (
	// KindTransport covers network errors, timeouts and non-2xx replies.
	KindTransport Kind = "transport"
	// KindNoContent is a successful reply that carries no text.
	KindNoContent Kind = "no_content"
	// KindNotConfigured means the resolved provider has no credentials.
	KindNotConfigured Kind = "not_configured"
)

var (
	ErrNoContent     = errors.New("provider returned no content")
	ErrNotConfigured = errors.New("provider not configured")
)

// Error is returned by every Client implementation. It matches both its
// cause and domain.ErrProviderFailure under errors.Is.
type Error struct {
	Provider Provider
	Model    string
	Kind     Kind
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Provider, e.Model, e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{e.Err, domain.ErrProviderFailure}
}

// TransportError wraps err as a transport failure of provider.
func TransportError(provider Provider, model string, err error) *Error {
	return &Error{Provider: provider, Model: model, Kind: KindTransport, Err: err}
}

// NoContentError reports an empty reply from provider.
func NoContentError(provider Provider, model string) *Error {
	return &Error{Provider: provider, Model: model, Kind: KindNoContent, Err: ErrNoContent}
}

// KindOf returns the failure kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
