package pipeline

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/portfolio-studio/internal/catalog"
	"github.com/jonathan/portfolio-studio/internal/llm"
	"github.com/jonathan/portfolio-studio/internal/parsing"
	"github.com/jonathan/portfolio-studio/internal/promptbuild"
	"github.com/jonathan/portfolio-studio/internal/schemas"
	"github.com/jonathan/portfolio-studio/internal/types"
)

// Recommend suggests a template, theme, and section ordering for the user's
// portfolio. The returned identifiers always reference real catalog entries
// and the section order is always a valid permutation of the sections
// present, regardless of what the model produced.
func (s *Service) Recommend(ctx context.Context, userID uuid.UUID) (*types.TemplateThemeRecommendation, error) {
	snapshot, err := s.loadNonEmptySnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Complete(ctx, promptbuild.Recommend(snapshot), llm.RecommendProfile)
	if err != nil {
		return nil, err
	}

	var rec types.TemplateThemeRecommendation
	if err := parsing.Decode(raw, schemas.TemplateRecommendation, &rec); err != nil {
		return nil, err
	}

	if _, ok := catalog.TemplateByID(rec.RecommendedTemplate); !ok {
		s.logger.Warn("model recommended unknown template, using fallback",
			zap.String("recommended", rec.RecommendedTemplate))
		rec.RecommendedTemplate = catalog.DefaultTemplate().ID
	}
	if _, ok := catalog.ThemeByID(rec.RecommendedTheme); !ok {
		s.logger.Warn("model recommended unknown theme, using fallback",
			zap.String("recommended", rec.RecommendedTheme))
		rec.RecommendedTheme = catalog.DefaultTheme().ID
	}

	rec.RecommendedSectionOrder = correctSectionOrder(rec.RecommendedSectionOrder, snapshot.SectionTypesPresent())
	return &rec, nil
}

// correctSectionOrder forces the proposed order into a permutation of the
// section types actually present: unknown or absent types are dropped,
// duplicates collapse to their first occurrence, and types the model omitted
// are appended in their current display order.
func correctSectionOrder(proposed []types.SectionType, present []types.SectionType) []types.SectionType {
	presentSet := make(map[types.SectionType]bool, len(present))
	for _, t := range present {
		presentSet[t] = true
	}

	used := make(map[types.SectionType]bool, len(present))
	order := make([]types.SectionType, 0, len(present))
	for _, t := range proposed {
		if presentSet[t] && !used[t] {
			used[t] = true
			order = append(order, t)
		}
	}
	for _, t := range present {
		if !used[t] {
			order = append(order, t)
		}
	}
	return order
}
