package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/portfolio-studio/internal/llm"
	"github.com/jonathan/portfolio-studio/internal/parsing"
	"github.com/jonathan/portfolio-studio/internal/promptbuild"
	"github.com/jonathan/portfolio-studio/internal/schemas"
	"github.com/jonathan/portfolio-studio/internal/scoring"
	"github.com/jonathan/portfolio-studio/internal/types"
)

// Analyze scores the user's portfolio across the six rubric dimensions.
// The model supplies qualitative signals only; all numbers come from the
// scoring rubric, so an unchanged portfolio scores the same on every run.
func (s *Service) Analyze(ctx context.Context, userID uuid.UUID) (*types.AnalysisResult, error) {
	snapshot, err := s.loadNonEmptySnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	raw, err := s.client.Complete(ctx, promptbuild.Analyze(snapshot), llm.AnalyzeProfile)
	if err != nil {
		return nil, err
	}

	var signals types.AnalysisSignals
	if err := parsing.Decode(raw, schemas.AnalysisSignals, &signals); err != nil {
		return nil, err
	}

	result, err := scoring.BuildResult(&signals)
	if err != nil {
		return nil, err
	}

	s.logger.Info("portfolio analyzed",
		zap.String("user_id", userID.String()),
		zap.Int("overall_score", result.OverallScore),
		zap.Int("recommendations", len(result.Recommendations)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}
