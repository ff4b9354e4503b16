package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dgallion1/specdoc/internal/config"
	"github.com/dgallion1/specdoc/internal/section"
	"github.com/spf13/cobra"
)

// Set with -ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
)

var verbose bool
var excludeFile string

var rootCmd = &cobra.Command{
	Use:   "specdoc",
	Short: "Number, section and outline heading-structured documents",
	Long: `specdoc numbers the headings of a Markdown, HTML or DOCX document
(1., 1.1., 1.1.1., ...), cuts it down to chosen sections, and prints or
serves its section outline.

Headings listed in an exclusion rule file (TOML) are left unnumbered.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("specdoc %s (commit: %s)\n", Version, Commit))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&excludeFile, "exclude", os.Getenv("EXCLUDE_FILE"), "TOML file of headings to leave unnumbered")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func loadRules() ([]section.ExclusionRule, error) {
	return config.LoadRules(excludeFile)
}
