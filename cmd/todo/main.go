// Package main is the entry point for the todo CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"todo/internal/backend/memstore"
	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, newStore)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(code)
}

// newStore creates the session's task store, seeded unless disabled.
func newStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (service.Service, error) {
	store := memstore.New(
		memstore.WithLogger(log),
		memstore.WithDateLayout(cfg.DateLayout),
	)
	if cfg.Seed {
		if err := memstore.Seed(store); err != nil {
			return nil, errors.Wrap(err, "failed to seed tasks")
		}
	}
	return store, nil
}
