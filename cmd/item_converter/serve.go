package main

import (
	"github.com/jonathan/item-converter/internal/metrics"
	"github.com/jonathan/item-converter/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the JSON to XML conversion and lint endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger := newLogger(cfg)
	m := metrics.New()
	conv := newConverter(cfg, logger, m)

	srv := server.New(cfg.Server, conv, server.WithLogger(logger), server.WithMetrics(m))
	return srv.Start()
}
