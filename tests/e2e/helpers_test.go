//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/adcopy-backend/internal/adapter/lock"
	"github.com/heartmarshall/adcopy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/adcopy-backend/internal/adapter/postgres/artifact"
	"github.com/heartmarshall/adcopy-backend/internal/adapter/postgres/audit"
	historyrepo "github.com/heartmarshall/adcopy-backend/internal/adapter/postgres/history"
	"github.com/heartmarshall/adcopy-backend/internal/adapter/postgres/request"
	"github.com/heartmarshall/adcopy-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/adcopy-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/adcopy-backend/internal/adapter/provider/llm"
	authpkg "github.com/heartmarshall/adcopy-backend/internal/auth"
	"github.com/heartmarshall/adcopy-backend/internal/config"
	"github.com/heartmarshall/adcopy-backend/internal/service/generation"
	"github.com/heartmarshall/adcopy-backend/internal/service/history"
	"github.com/heartmarshall/adcopy-backend/internal/transport/middleware"
	"github.com/heartmarshall/adcopy-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// Scripted provider.
// ---------------------------------------------------------------------------

var platformRe = regexp.MustCompile(`Platform: (\w+)`)

// scriptedProvider answers every prompt with well-formed JSON for the
// channel named in the prompt. Channels listed in failOn return a transport
// error; channels listed in freeText return prose.
type scriptedProvider struct {
	mu       sync.Mutex
	calls    int
	failOn   map[string]bool
	freeText map[string]bool
}

func (p *scriptedProvider) Generate(_ context.Context, pr llm.Prompt, model string) (string, error) {
	p.mu.Lock()
	p.calls++
	n := p.calls
	p.mu.Unlock()

	channel := "Unknown"
	if m := platformRe.FindStringSubmatch(pr.User); m != nil {
		channel = m[1]
	}

	if p.failOn[channel] {
		return "", llm.TransportError(llm.ProviderOpenAI, model, fmt.Errorf("scripted outage for %s", channel))
	}
	if p.freeText[channel] {
		return "Fresh skin starts here ✨ #glow #skincare", nil
	}

	return fmt.Sprintf(`{
		"content": {
			"channel": %q,
			"title": "Title %d",
			"body": "Body for %s",
			"cta": "Shop now",
			"meta": {"hashtags": ["#glow"], "emojis": ["✨"]}
		}
	}`, channel, n, channel), nil
}

func (p *scriptedProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL      string
	Client   *http.Client
	Pool     *pgxpool.Pool
	Provider *scriptedProvider
	jwt      *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper) and a scripted provider.
func setupTestServer(t *testing.T, provider *scriptedProvider, cfg generation.Config) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	entries := historyrepo.New(pool)
	historySvc := history.NewService(logger, entries, lock.NewLocal())
	genSvc := generation.NewService(
		logger, txm,
		userrepo.New(pool), request.New(pool), artifact.New(pool), audit.New(pool), entries,
		historySvc, provider, cfg,
	)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	mux := rest.NewRouter(rest.Routes{
		Health:  rest.NewHealthHandler(pool, "test-version"),
		Content: rest.NewContentHandler(genSvc, logger),
		History: rest.NewHistoryHandler(historySvc, logger),
		Auth:    middleware.Auth(jwtMgr),
	})

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.Metrics(),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:      srv.URL,
		Client:   srv.Client(),
		Pool:     pool,
		Provider: provider,
		jwt:      jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// do sends a JSON request and decodes the JSON response into a generic map.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil && err != io.EOF {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, result
}

// createUserAndToken seeds a user and returns its ID and a bearer token.
func createUserAndToken(t *testing.T, ts *testServer, brand *string) (uuid.UUID, string) {
	t.Helper()

	u := testhelper.SeedUserWithBrand(t, ts.Pool, brand)
	tok, err := ts.jwt.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return u.ID, tok
}

func brief(channels ...string) map[string]any {
	return map[string]any{
		"productName":    "GlowServe",
		"keyBenefits":    []string{"hydrates for 24 hours", "brightens dull skin"},
		"targetAudience": "women 25-40 who care about clean beauty",
		"tone":           "playful",
		"channels":       channels,
	}
}

func countRows(t *testing.T, pool *pgxpool.Pool, query string, args ...any) int {
	t.Helper()
	var n int
	if err := pool.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}
