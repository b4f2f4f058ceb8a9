package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/portfolio-studio/internal/catalog"
	"github.com/jonathan/portfolio-studio/internal/ingestion"
	"github.com/jonathan/portfolio-studio/internal/llm"
	"github.com/jonathan/portfolio-studio/internal/parsing"
	"github.com/jonathan/portfolio-studio/internal/promptbuild"
	"github.com/jonathan/portfolio-studio/internal/schemas"
	"github.com/jonathan/portfolio-studio/internal/types"
)

// MinResumeChars is the minimum resume length worth a generation attempt.
const MinResumeChars = 200

// Generate builds a portfolio draft from resume text. HTML resume exports are
// reduced to plain text first. Extracted claims that cannot be traced back to
// the resume are dropped and reported in the draft's warnings rather than
// published. The draft is a proposal; the caller decides whether to save it.
func (s *Service) Generate(ctx context.Context, userID uuid.UUID, resumeRaw string) (*types.GeneratedPortfolioDraft, error) {
	resumeText, err := ingestion.ResumeText(resumeRaw)
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("could not read resume: %v", err)}
	}
	if resumeText == "" {
		return nil, &EmptyInputError{Message: "resume text is empty"}
	}
	if len(resumeText) < MinResumeChars {
		return nil, &ValidationError{
			Message: fmt.Sprintf("resume must be at least %d characters", MinResumeChars),
		}
	}

	raw, err := s.client.Complete(ctx, promptbuild.Generate(resumeText), llm.GenerateProfile)
	if err != nil {
		return nil, err
	}

	var draft types.GeneratedPortfolioDraft
	if err := parsing.Decode(raw, schemas.PortfolioDraft, &draft); err != nil {
		return nil, err
	}

	if _, ok := catalog.TemplateByID(draft.SuggestedTemplate); !ok {
		draft.SuggestedTemplate = catalog.DefaultTemplate().ID
	}
	if _, ok := catalog.ThemeByID(draft.SuggestedTheme); !ok {
		draft.SuggestedTheme = catalog.DefaultTheme().ID
	}

	draft.Sections, draft.Warnings = traceSections(draft.Sections, resumeText)
	if len(draft.Sections) == 0 {
		return nil, &parsing.ParseError{Message: "no traceable sections extracted from resume"}
	}
	normalizeSectionOrder(draft.Sections)

	s.logger.Info("portfolio generated from resume",
		zap.String("user_id", userID.String()),
		zap.Int("sections", len(draft.Sections)),
		zap.Int("warnings", len(draft.Warnings)),
	)
	return &draft, nil
}

// normalizeSectionOrder sorts sections by their proposed order (stable, so
// ties keep response order) and reassigns contiguous display positions.
func normalizeSectionOrder(sections []types.Section) {
	sort.SliceStable(sections, func(a, b int) bool {
		return sections[a].Order < sections[b].Order
	})
	now := time.Now()
	for i := range sections {
		sections[i].Order = i
		sections[i].UpdatedAt = now
	}
}

// traceSections drops certification and experience claims that do not appear
// in the source resume. The model is asked to extract, not invent; a claim
// whose heading line has no case-insensitive support in the resume is treated
// as a hallucination.
func traceSections(sections []types.Section, resumeText string) ([]types.Section, []string) {
	lowerResume := strings.ToLower(resumeText)

	var (
		kept     []types.Section
		warnings []string
	)
	for _, section := range sections {
		if section.Type != types.SectionCertification && section.Type != types.SectionExperience {
			kept = append(kept, section)
			continue
		}

		lines := strings.Split(section.Content, "\n")
		traced := lines[:0]
		for _, line := range lines {
			claim := claimKey(line)
			if claim != "" && !strings.Contains(lowerResume, claim) {
				warnings = append(warnings, fmt.Sprintf("dropped untraceable %s entry: %q", section.Type, strings.TrimSpace(line)))
				continue
			}
			traced = append(traced, line)
		}

		section.Content = strings.TrimSpace(strings.Join(traced, "\n"))
		if section.Content == "" {
			warnings = append(warnings, fmt.Sprintf("dropped empty %s section after traceability check", section.Type))
			continue
		}
		kept = append(kept, section)
	}
	return kept, warnings
}

// claimKey reduces a content line to the lowercased heading phrase used for
// the traceability lookup. Short fragments and markup-only lines yield an
// empty key and are never dropped.
func claimKey(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, "-*• \t")
	if idx := strings.IndexAny(line, ",(|"); idx > 0 {
		line = line[:idx]
	}
	line = strings.TrimSpace(strings.ToLower(line))
	if len(line) < 4 {
		return ""
	}
	return line
}
