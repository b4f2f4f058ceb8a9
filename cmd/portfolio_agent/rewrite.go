package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-studio/internal/observability"
	"github.com/jonathan/portfolio-studio/internal/types"
)

var (
	rewriteUserID   string
	rewriteTone     string
	rewriteMaxWords int
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite a user's portfolio in a given tone",
	Long:  `Rewrite every portfolio section in the requested tone and persist the result.`,
	RunE:  runRewrite,
}

func init() {
	rewriteCmd.Flags().StringVar(&rewriteUserID, "user", "", "User UUID whose portfolio to rewrite (required)")
	rewriteCmd.Flags().StringVar(&rewriteTone, "tone", "professional", "Target tone")
	rewriteCmd.Flags().IntVar(&rewriteMaxWords, "max-words", 0, "Per-section word cap (0 for default)")
	_ = rewriteCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(rewriteUserID)
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

	result, err := svc.Rewrite(ctx, userID, types.Tone(rewriteTone), rewriteMaxWords)
	if err != nil {
		return err
	}
	if err := database.ReplaceSections(ctx, userID, result.Sections); err != nil {
		return fmt.Errorf("could not save rewritten sections: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintRewrite(result)
	return nil
}
