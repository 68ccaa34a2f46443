package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"storefront-admin/internal/config"
	"storefront-admin/internal/database"
)

const usage = `Usage: migrate [flags] <command> [args]

Commands:
  up                   apply all pending migrations
  up-by-one            apply the next pending migration
  up-to VERSION        migrate up to VERSION
  down                 roll back the latest migration
  down-to VERSION      roll back to VERSION
  redo                 roll back and re-apply the latest migration
  reset                roll back all migrations
  status               print the status of all migrations
  version              print the current schema version
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	cfg, err := config.LoadMigrationConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	return database.Migrate(ctx, pool, command, logger, args...)
}
