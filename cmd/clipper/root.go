package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/clipper/internal/api"
	"github.com/jackzampolin/clipper/version"
)

var (
	cfgFile      string
	homeDirPath  string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "clipper",
	Short: "Newsclip bundle reconstruction pipeline",
	Long: `Clipper reconstructs the discrete articles inside a digitized
periodical-archive export (a multi-article newsclip bundle) from its flat
text stream.

The pipeline includes:
  - Page segmentation from recurring page markers
  - Index (table of contents) location and parsing
  - Per-article span extraction across physical pages
  - Positional metadata recovery (date, source, author, word count)
  - Boilerplate stripping and validation`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.clipper/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDirPath, "home", "", "clipper home directory (default: ~/.clipper)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the CLI logger at the configured level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
