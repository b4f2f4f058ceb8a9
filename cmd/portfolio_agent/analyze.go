package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-studio/internal/config"
	"github.com/jonathan/portfolio-studio/internal/db"
	"github.com/jonathan/portfolio-studio/internal/llm"
	"github.com/jonathan/portfolio-studio/internal/observability"
	"github.com/jonathan/portfolio-studio/internal/pipeline"
)

var analyzeUserID string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a user's portfolio from the command line",
	Long:  `Run the analysis operation against a stored portfolio and print the scored result.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeUserID, "user", "", "User UUID whose portfolio to analyze (required)")
	_ = analyzeCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(analyzeCmd)
}

// newPipeline wires a pipeline service for one-shot CLI commands. The caller
// must Close the returned client and database.
func newPipeline(ctx context.Context) (*pipeline.Service, *db.DB, llm.Client, error) {
	cfg, err := config.LoadApp()
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, err
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, err
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiKey)
	if err != nil {
		database.Close()
		return nil, nil, nil, err
	}

	return pipeline.NewService(database, client, logger), database, client, nil
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(analyzeUserID)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	ctx := cmd.Context()
	svc, database, client, err := newPipeline(ctx)
	if err != nil {
		return err
	}
	defer database.Close()
	defer func() { _ = client.Close() }()

	result, err := svc.Analyze(ctx, userID)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintAnalysis(result)
	return nil
}
