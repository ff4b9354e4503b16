package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgallion1/specdoc/internal/api"
	"github.com/dgallion1/specdoc/internal/config"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	rules, err := config.LoadRules(cfg.ExcludeFile)
	if err != nil {
		log.Error("invalid exclusion rules", "error", err)
		os.Exit(1)
	}
	log.Info("loaded exclusion rules", "path", cfg.ExcludeFile, "count", len(rules))

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := api.NewServer(cfg, rules, log)
	if err := srv.Run(ctx, ":"+cfg.Port); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
