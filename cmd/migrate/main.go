// Command migrate applies the SQL migrations in migrations/.
//
// Usage:
//
//	migrate [--dir=migrations] up|down|status
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
)

func main() {
	dir := flag.String("dir", "migrations", "directory with goose SQL migrations")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: migrate [--dir=migrations] up|down|status")
		os.Exit(2)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(*dir))
	if err != nil {
		log.Fatalf("goose provider: %v", err)
	}

	switch cmd := flag.Arg(0); cmd {
	case "up":
		results, err := provider.Up(ctx)
		report(results)
		if err != nil {
			log.Fatalf("migrate up: %v", err)
		}
	case "down":
		result, err := provider.Down(ctx)
		if result != nil {
			report([]*goose.MigrationResult{result})
		}
		if err != nil {
			log.Fatalf("migrate down: %v", err)
		}
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			log.Fatalf("migrate status: %v", err)
		}
		for _, s := range statuses {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%05d  %-30s  %s\n", s.Source.Version, s.Source.Path, applied)
		}
	default:
		log.Fatalf("unknown command %q", cmd)
	}
}

func report(results []*goose.MigrationResult) {
	for _, r := range results {
		fmt.Printf("%-6s %05d %s (%s)\n", r.Direction, r.Source.Version, r.Source.Path, r.Duration)
	}
}
