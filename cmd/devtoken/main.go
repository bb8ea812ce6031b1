// Command devtoken creates or updates a user and prints a bearer token for
// it. Accounts are managed elsewhere in production; this is for local use.
//
// Usage:
//
//	devtoken -email=user@example.com [-name="Jane"] [-brand="..."] [-ttl=24h]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/adcopy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/adcopy-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/adcopy-backend/internal/auth"
	"github.com/heartmarshall/adcopy-backend/internal/config"
	"github.com/heartmarshall/adcopy-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the user to create or update")
	name := flag.String("name", "", "display name (defaults to the email local part)")
	brand := flag.String("brand", "", "brand context included in every prompt")
	ttl := flag.Duration("ttl", 0, "token lifetime (default from AUTH_ACCESS_TOKEN_TTL)")
	flag.Parse()

	if strings.TrimSpace(*email) == "" {
		fmt.Fprintln(os.Stderr, "Usage: devtoken -email=user@example.com [-name=...] [-brand=...] [-ttl=24h]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	displayName := strings.TrimSpace(*name)
	if displayName == "" {
		displayName, _, _ = strings.Cut(*email, "@")
	}

	var brandContext *string
	if b := strings.TrimSpace(*brand); b != "" {
		brandContext = &b
	}

	now := time.Now().UTC()
	u, err := user.New(pool).Upsert(ctx, domain.User{
		ID:                    uuid.New(),
		Email:                 strings.TrimSpace(*email),
		Name:                  displayName,
		GeneratedBrandContext: brandContext,
		IsActive:              true,
		CreatedAt:             now,
		UpdatedAt:             now,
	})
	if err != nil {
		log.Fatalf("upsert user: %v", err)
	}

	tokenTTL := cfg.Auth.AccessTokenTTL
	if *ttl > 0 {
		tokenTTL = *ttl
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, tokenTTL).
		GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "user %s (%s), token valid for %s\n", u.ID, u.Email, tokenTTL)
	fmt.Println(token)
}
