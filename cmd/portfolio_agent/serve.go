package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-studio/internal/config"
	"github.com/jonathan/portfolio-studio/internal/observability"
	"github.com/jonathan/portfolio-studio/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes portfolio management and the AI operations.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadApp()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		APIKey:      cfg.GeminiKey,
		RedisAddr:   cfg.RedisAddr,
		UseBrowser:  cfg.UseBrowser,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
