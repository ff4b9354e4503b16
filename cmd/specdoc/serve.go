package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgallion1/specdoc/internal/api"
	"github.com/dgallion1/specdoc/internal/config"
	"github.com/spf13/cobra"
)

var servePort string
var serveSpec string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the spec and the outline API over HTTP",
	Long: `Serve the configured document at /spec and /spec.txt, and the outline and
render API under /api. Settings come from the environment (PORT, SPEC_PATH,
SPECDOC_API_KEY, EXCLUDE_FILE, ...); flags override them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if servePort != "" {
			cfg.Port = servePort
		}
		if serveSpec != "" {
			cfg.SpecPath = serveSpec
		}
		cfg.ExcludeFile = excludeFile
		if err := cfg.Validate(); err != nil {
			return err
		}
		rules, err := loadRules()
		if err != nil {
			return err
		}

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return api.NewServer(cfg, rules, log).Run(ctx, ":"+cfg.Port)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (default $PORT or 8090)")
	serveCmd.Flags().StringVar(&serveSpec, "spec", "", "Document to serve (default $SPEC_PATH)")

	rootCmd.AddCommand(serveCmd)
}
