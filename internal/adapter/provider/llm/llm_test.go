package llm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/adcopy-backend/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		model        string
		wantProvider Provider
		wantModel    string
	}{
		{"gpt-4o", ProviderOpenAI, "gpt-4o"},
		{"gpt-4-turbo-preview", ProviderOpenAI, "gpt-4-turbo-preview"},
		{"gpt-4", ProviderOpenAI, "gpt-4"},
		{"gpt-3.5-turbo", ProviderOpenAI, "gpt-3.5-turbo"},
		{"gemini-pro", ProviderGemini, "gemini-pro"},
		{"gemini-pro-vision", ProviderGemini, "gemini-pro-vision"},
		{"claude-sonnet-4-5", ProviderAnthropic, "claude-sonnet-4-5"},
		{"", ProviderOpenAI, DefaultModel},
		{"llama-3", ProviderOpenAI, DefaultModel},
		{"GPT-4O", ProviderOpenAI, DefaultModel},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			t.Parallel()
			p, m := Resolve(tt.model)
			assert.Equal(t, tt.wantProvider, p)
			assert.Equal(t, tt.wantModel, m)
		})
	}
}

func TestIsKnown(t *testing.T) {
	t.Parallel()

	for _, m := range []string{"gpt-4o", "gpt-3.5-turbo", "gemini-pro", "claude-sonnet-4-5"} {
		assert.True(t, IsKnown(m), m)
	}
	for _, m := range []string{"", "banana", "GPT-4O", "claude", "gemini-2.0-flash"} {
		assert.False(t, IsKnown(m), m)
	}
}

func TestError_MatchesProviderFailureAndCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := error(TransportError(ProviderGemini, "gemini-2.0-flash", cause))

	assert.ErrorIs(t, err, domain.ErrProviderFailure)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindTransport, KindOf(err))
	assert.Contains(t, err.Error(), "gemini")

	noContent := error(NoContentError(ProviderOpenAI, "gpt-4o"))
	assert.ErrorIs(t, noContent, ErrNoContent)
	assert.ErrorIs(t, noContent, domain.ErrProviderFailure)
	assert.Equal(t, KindNoContent, KindOf(noContent))

	assert.Equal(t, Kind(""), KindOf(cause))
}

func TestRouter_DispatchesResolvedModel(t *testing.T) {
	t.Parallel()

	openai := &clientMock{GenerateFunc: func(ctx context.Context, p Prompt, model string) (string, error) {
		return "from openai", nil
	}}
	gemini := &clientMock{GenerateFunc: func(ctx context.Context, p Prompt, model string) (string, error) {
		return "from gemini", nil
	}}
	r := NewRouter(newTestLogger(), map[Provider]Client{
		ProviderOpenAI: openai,
		ProviderGemini: gemini,
	}, time.Minute)

	out, err := r.Generate(context.Background(), Prompt{System: "s", User: "u"}, "gemini-pro")
	require.NoError(t, err)
	assert.Equal(t, "from gemini", out)
	require.Len(t, gemini.GenerateCalls(), 1)
	assert.Equal(t, "gemini-pro", gemini.GenerateCalls()[0].Model)
	assert.Equal(t, Prompt{System: "s", User: "u"}, gemini.GenerateCalls()[0].P)

	out, err = r.Generate(context.Background(), Prompt{}, "unknown-model")
	require.NoError(t, err)
	assert.Equal(t, "from openai", out)
	assert.Equal(t, DefaultModel, openai.GenerateCalls()[0].Model)
}

func TestRouter_MissingProviderIsNotConfigured(t *testing.T) {
	t.Parallel()

	r := NewRouter(newTestLogger(), map[Provider]Client{ProviderAnthropic: nil}, 0)
	assert.False(t, r.Has(ProviderAnthropic))

	_, err := r.Generate(context.Background(), Prompt{}, "claude-3-haiku")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProviderFailure)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, KindNotConfigured, KindOf(err))
}

func TestRouter_WrapsForeignErrorsAsTransport(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	r := NewRouter(newTestLogger(), map[Provider]Client{
		ProviderOpenAI: &clientMock{GenerateFunc: func(ctx context.Context, p Prompt, model string) (string, error) {
			return "", cause
		}},
	}, 0)

	_, err := r.Generate(context.Background(), Prompt{}, "gpt-4")
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, domain.ErrProviderFailure)
	assert.Equal(t, KindTransport, KindOf(err))
}

func TestRouter_AppliesTimeout(t *testing.T) {
	t.Parallel()

	r := NewRouter(newTestLogger(), map[Provider]Client{
		ProviderOpenAI: &clientMock{GenerateFunc: func(ctx context.Context, p Prompt, model string) (string, error) {
			deadline, ok := ctx.Deadline()
			if !ok {
				t.Error("expected a deadline on the provider context")
			} else if time.Until(deadline) > 5*time.Second {
				t.Errorf("deadline too far: %v", time.Until(deadline))
			}
			<-ctx.Done()
			return "", TransportError(ProviderOpenAI, model, ctx.Err())
		}},
	}, 20*time.Millisecond)

	_, err := r.Generate(context.Background(), Prompt{}, "gpt-4o")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, err, domain.ErrProviderFailure)
}
