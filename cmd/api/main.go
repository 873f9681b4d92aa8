// Command api serves the GlucoseGurus REST API.
//
// Usage:
//
//	api
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment. AUTH_JWT_SECRET is required.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/glucosegurus/glucosegurus-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "api: %v\n", err)
		os.Exit(1)
	}
}
