// Package main is the entry point for the todos CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todos/internal/backend/filestore"
	"todos/internal/backend/sqlitestore"
	"todos/internal/cli"
	"todos/internal/commands"
	"todos/internal/config"
	"todos/internal/storage"
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

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, openStore)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}

// openStore opens the backend named in cfg.
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return filestore.New(cfg)
	case config.BackendSQLite:
		return sqlitestore.New(cfg)
	default:
		return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
}
