package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/portfolio-studio/internal/llm"
	"github.com/jonathan/portfolio-studio/internal/parsing"
	"github.com/jonathan/portfolio-studio/internal/promptbuild"
	"github.com/jonathan/portfolio-studio/internal/schemas"
	"github.com/jonathan/portfolio-studio/internal/types"
)

// Per-section word cap bounds for rewriting.
const (
	MinRewriteWords     = 20
	MaxRewriteWords     = 400
	DefaultRewriteWords = 120
)

// Rewrite rewrites every portfolio section in the requested tone. Section
// count, types, and display order are preserved exactly; only content changes.
// A maxWords of zero selects the default cap. Nothing is persisted here; the
// caller writes the returned sections back once it accepts the result.
func (s *Service) Rewrite(ctx context.Context, userID uuid.UUID, tone types.Tone, maxWords int) (*types.RewriteResult, error) {
	if !tone.IsValid() {
		return nil, &ValidationError{Message: fmt.Sprintf("unsupported tone %q", tone)}
	}
	if maxWords == 0 {
		maxWords = DefaultRewriteWords
	}
	if maxWords < MinRewriteWords || maxWords > MaxRewriteWords {
		return nil, &ValidationError{
			Message: fmt.Sprintf("maxWords %d outside [%d,%d]", maxWords, MinRewriteWords, MaxRewriteWords),
		}
	}

	snapshot, err := s.loadNonEmptySnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Complete(ctx, promptbuild.Rewrite(snapshot, tone, maxWords), llm.RewriteProfile)
	if err != nil {
		return nil, err
	}

	var decoded struct {
		Sections []types.Section `json:"sections"`
	}
	if err := parsing.Decode(raw, schemas.RewriteResult, &decoded); err != nil {
		return nil, err
	}

	sections, err := alignRewrittenSections(snapshot.Sections, decoded.Sections)
	if err != nil {
		return nil, err
	}

	s.logger.Info("portfolio rewritten",
		zap.String("user_id", userID.String()),
		zap.String("tone", string(tone)),
		zap.Int("sections", len(sections)),
	)
	return &types.RewriteResult{Tone: tone, Sections: sections}, nil
}

// alignRewrittenSections maps model output back onto the input sections.
// Each input section consumes the first unclaimed output section of the same
// type, so a reordered response still lands in the original display order.
// A response with a different section count, a missing section, or an
// unmatched extra is a contract violation.
func alignRewrittenSections(input, output []types.Section) ([]types.Section, error) {
	if len(output) != len(input) {
		return nil, &parsing.ParseError{
			Message: fmt.Sprintf("rewrite response returned %d sections for a %d section portfolio", len(output), len(input)),
		}
	}

	claimed := make([]bool, len(output))
	now := time.Now()

	aligned := make([]types.Section, len(input))
	for i, in := range input {
		found := false
		for j, out := range output {
			if claimed[j] || out.Type != in.Type {
				continue
			}
			claimed[j] = true
			aligned[i] = types.Section{
				Type:      in.Type,
				Content:   out.Content,
				Order:     in.Order,
				UpdatedAt: now,
			}
			found = true
			break
		}
		if !found {
			return nil, &parsing.ParseError{
				Message: fmt.Sprintf("rewrite response missing a %s section", in.Type),
			}
		}
	}
	return aligned, nil
}
