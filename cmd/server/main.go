// Command server runs the educational platform REST API.
//
// Configuration comes from CONFIG_PATH (default ./config.yaml) and the
// environment; DATABASE_DSN is required.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pavlo-petrychenko/labb/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
