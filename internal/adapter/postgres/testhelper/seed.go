package testhelper

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/adcopy-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active user without brand context.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWithBrand(t, pool, nil)
}

// SeedUserWithBrand creates an active user with the given brand context.
func SeedUserWithBrand(t *testing.T, pool *pgxpool.Pool, brand *string) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:                    uuid.New(),
		Email:                 "testuser-" + suffix + "@example.com",
		Name:                  "Test User " + suffix,
		GeneratedBrandContext: brand,
		IsActive:              true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, generated_brand_context, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, user.GeneratedBrandContext, user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedRequest creates a generated content request for userID.
func SeedRequest(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, channels ...domain.Channel) domain.GenerationRequest {
	t.Helper()
	ctx := context.Background()

	if len(channels) == 0 {
		channels = []domain.Channel{domain.ChannelInstagram}
	}
	chs := make([]string, len(channels))
	for i, c := range channels {
		chs[i] = string(c)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	req := domain.GenerationRequest{
		ID:             uuid.New(),
		UserID:         userID,
		ProductName:    "Product " + uniqueSuffix(),
		KeyBenefits:    []string{"Hydrating", "Vegan"},
		TargetAudience: "women 25-45",
		Tone:           domain.ToneCasual,
		Channels:       channels,
		Model:          "gpt-4o",
		Status:         domain.RequestStatusGenerated,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO content_requests (id, user_id, product_name, key_benefits, target_audience, tone, channels, model, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		req.ID, req.UserID, req.ProductName, req.KeyBenefits, req.TargetAudience, string(req.Tone),
		chs, req.Model, string(req.Status), req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRequest insert: %v", err)
	}

	return req
}

// SeedHistory inserts n live history entries for the request, one second
// apart starting at base. Entry i has title "Title <i>".
func SeedHistory(t *testing.T, pool *pgxpool.Pool, req domain.GenerationRequest, n int, base time.Time) []domain.HistoryEntry {
	t.Helper()
	ctx := context.Background()

	entries := make([]domain.HistoryEntry, 0, n)
	for i := range n {
		channel := domain.AllChannels[i%len(domain.AllChannels)]
		e := domain.HistoryEntry{
			ID:          uuid.New(),
			UserID:      req.UserID,
			RequestID:   req.ID,
			Channel:     channel,
			ProductName: req.ProductName,
			KeyBenefits: req.KeyBenefits,
			Tone:        req.Tone,
			Content: domain.ContentBlock{
				Channel:  channel,
				Language: domain.DefaultLanguage,
				Tone:     req.Tone,
				Title:    "Title " + strconv.Itoa(i),
				Body:     "Body " + strconv.Itoa(i),
				CTA:      "Shop now",
				Meta:     domain.ContentMeta{Hashtags: []string{"#seed"}, Emojis: []string{}},
			},
			Model:     req.Model,
			CreatedAt: base.Add(time.Duration(i) * time.Second).UTC().Truncate(time.Microsecond),
		}

		_, err := pool.Exec(ctx,
			`INSERT INTO content_history (id, user_id, request_id, channel, product_name, key_benefits, tone, language,
			                              title, body, cta, hashtags, emojis, model, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
			e.ID, e.UserID, e.RequestID, string(e.Channel), e.ProductName, e.KeyBenefits, string(e.Tone),
			e.Content.Language, e.Content.Title, e.Content.Body, e.Content.CTA,
			e.Content.Meta.Hashtags, e.Content.Meta.Emojis, e.Model, e.CreatedAt,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedHistory insert #%d: %v", i, err)
		}
		entries = append(entries, e)
	}

	return entries
}

// CountLiveHistory returns the number of non-archived history rows for userID.
func CountLiveHistory(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM content_history WHERE user_id = $1 AND NOT is_archived`, userID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountLiveHistory: %v", err)
	}
	return n
}
