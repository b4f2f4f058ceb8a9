// Package pipeline orchestrates the AI operations over user portfolios:
// analysis, template recommendation, tone rewriting, job optimization, and
// resume-based generation. Every operation follows the same shape: load and
// validate input, build a prompt, run one completion, validate the response
// against its contract, and post-process deterministically.
package pipeline

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/portfolio-studio/internal/db"
	"github.com/jonathan/portfolio-studio/internal/llm"
	"github.com/jonathan/portfolio-studio/internal/types"
)

// Store is the read-only portfolio surface the pipeline needs. Operations
// return results; write-back is the caller's decision, so the pipeline never
// sees a mutating method.
type Store interface {
	GetPortfolio(ctx context.Context, userID uuid.UUID) (*types.PortfolioSnapshot, error)
}

// Service runs the AI operations. It holds no per-request state and is safe
// for concurrent use.
type Service struct {
	store  Store
	client llm.Client
	logger *zap.Logger
}

// NewService creates a pipeline service. A nil logger disables logging.
func NewService(store Store, client llm.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, client: client, logger: logger}
}

// loadSnapshot fetches the user's portfolio, mapping a missing row to
// NotFoundError.
func (s *Service) loadSnapshot(ctx context.Context, userID uuid.UUID) (*types.PortfolioSnapshot, error) {
	snapshot, err := s.store.GetPortfolio(ctx, userID)
	if err != nil {
		if err == db.ErrNotFound {
			return nil, &NotFoundError{Resource: "portfolio"}
		}
		return nil, err
	}
	return snapshot, nil
}

// loadNonEmptySnapshot fetches the portfolio and rejects one with no usable
// content before any completion tokens are spent on it.
func (s *Service) loadNonEmptySnapshot(ctx context.Context, userID uuid.UUID) (*types.PortfolioSnapshot, error) {
	snapshot, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	if snapshotEmpty(snapshot) {
		return nil, &EmptyInputError{Message: "portfolio has no content to work with"}
	}
	return snapshot, nil
}

func snapshotEmpty(snapshot *types.PortfolioSnapshot) bool {
	for _, section := range snapshot.Sections {
		if strings.TrimSpace(section.Content) != "" {
			return false
		}
	}
	return true
}
