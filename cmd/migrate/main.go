// Command migrate applies, rolls back or reports the embedded database
// migrations.
//
// Usage:
//
//	migrate -command=up|down|status
//
// Requires DATABASE_DSN (or a config file) to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/adcopy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/adcopy-backend/internal/config"
)

func main() {
	command := flag.String("command", "up", "migration command: up, down or status")
	flag.Parse()

	cmd := postgres.MigrationCommand(*command)
	switch cmd {
	case postgres.MigrateUp, postgres.MigrateDown, postgres.MigrateStatus:
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q, want up, down or status\n", *command)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	results, err := postgres.Migrate(ctx, cfg.Database.DSN, cmd)
	if err != nil {
		log.Fatalf("migrate %s: %v", cmd, err)
	}

	if len(results) == 0 {
		fmt.Println("nothing to do")
		return
	}
	for _, r := range results {
		state := "pending"
		if r.Applied {
			state = "applied"
		}
		if cmd == postgres.MigrateDown {
			state = "rolled back"
		}
		fmt.Printf("%05d  %-12s %s\n", r.Version, state, r.Source)
	}
}
