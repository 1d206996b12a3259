// Package main provides the item_converter CLI and HTTP API server.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonathan/item-converter/internal/config"
	"github.com/jonathan/item-converter/internal/conversion"
	"github.com/jonathan/item-converter/internal/logging"
	"github.com/jonathan/item-converter/internal/metrics"
	"github.com/jonathan/item-converter/internal/rendering"
	"github.com/jonathan/item-converter/internal/validation"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "item_converter",
	Short: "Published item JSON to XML converter",
	Long: "item_converter validates published-item JSON documents against the publishing rules " +
		"(Status, PublishDate, TestRun) and transcodes the ones that pass into the downstream XML format.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file (optional)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves configuration from defaults, --config and the environment.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newLogger writes to stderr so stdout stays clean for XML output.
func newLogger(cfg *config.Config) *slog.Logger {
	return logging.New(os.Stderr, cfg.Log)
}

// newConverter wires the validator and transcoder from cfg. m may be nil.
func newConverter(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *conversion.Converter {
	v := validation.New(cfg.Validation, validation.WithLogger(logger), validation.WithLocation(time.Local))
	t := rendering.New(cfg.Render, rendering.WithLogger(logger))
	return conversion.New(v, t, conversion.WithLogger(logger), conversion.WithMetrics(m))
}
