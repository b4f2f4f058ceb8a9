package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/portfolio-studio/internal/ingestion"
	"github.com/jonathan/portfolio-studio/internal/llm"
	"github.com/jonathan/portfolio-studio/internal/parsing"
	"github.com/jonathan/portfolio-studio/internal/promptbuild"
	"github.com/jonathan/portfolio-studio/internal/schemas"
	"github.com/jonathan/portfolio-studio/internal/types"
)

// Job description and skill suggestion bounds.
const (
	MinJobDescriptionChars = 100
	MinSuggestedSkills     = 1
	MaxSuggestedSkills     = 20
	DefaultSuggestedSkills = 10
)

// OptimizeOptions configures a job optimization request. Exactly one of
// JobDescription and JobURL must be set; UseBrowser enables headless
// rendering for JavaScript-heavy job boards when fetching by URL.
type OptimizeOptions struct {
	JobDescription string
	JobURL         string
	UseBrowser     bool
	MaxSkills      int
}

// Optimize aligns the portfolio toward a job description and suggests missing
// skills. It returns suggestions only; nothing is persisted until the user
// accepts changes through the portfolio endpoints.
func (s *Service) Optimize(ctx context.Context, userID uuid.UUID, opts OptimizeOptions) (*types.JobOptimizationResult, error) {
	if opts.MaxSkills == 0 {
		opts.MaxSkills = DefaultSuggestedSkills
	}
	if opts.MaxSkills < MinSuggestedSkills || opts.MaxSkills > MaxSuggestedSkills {
		return nil, &ValidationError{
			Message: fmt.Sprintf("maxSkills %d outside [%d,%d]", opts.MaxSkills, MinSuggestedSkills, MaxSuggestedSkills),
		}
	}

	hasText := strings.TrimSpace(opts.JobDescription) != ""
	hasURL := strings.TrimSpace(opts.JobURL) != ""
	if hasText == hasURL {
		return nil, &ValidationError{Message: "provide exactly one of jobDescription and jobUrl"}
	}

	// The portfolio load and the job posting fetch are independent; run them
	// concurrently when the description has to come over the network.
	var (
		snapshot       *types.PortfolioSnapshot
		jobDescription = opts.JobDescription
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snapshot, err = s.loadNonEmptySnapshot(gctx, userID)
		return err
	})
	if hasURL {
		g.Go(func() error {
			var err error
			jobDescription, err = ingestion.JobDescriptionFromURL(gctx, opts.JobURL, opts.UseBrowser)
			if err != nil {
				return &ValidationError{Message: fmt.Sprintf("could not fetch job posting: %v", err)}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(strings.TrimSpace(jobDescription)) < MinJobDescriptionChars {
		return nil, &ValidationError{
			Message: fmt.Sprintf("job description must be at least %d characters", MinJobDescriptionChars),
		}
	}

	raw, err := s.client.Complete(ctx, promptbuild.Optimize(snapshot, jobDescription, opts.MaxSkills), llm.OptimizeProfile)
	if err != nil {
		return nil, err
	}

	var result types.JobOptimizationResult
	if err := parsing.Decode(raw, schemas.JobOptimization, &result); err != nil {
		return nil, err
	}

	result.UpdatedSections = filterUpdatedSections(result.UpdatedSections, snapshot)
	result.SuggestedSkills = dedupeSkills(result.SuggestedSkills, snapshot, opts.MaxSkills)

	s.logger.Info("portfolio optimized for job",
		zap.String("user_id", userID.String()),
		zap.Int("updated_sections", len(result.UpdatedSections)),
		zap.Int("suggested_skills", len(result.SuggestedSkills)),
	)
	return &result, nil
}

// filterUpdatedSections keeps only updates that target a section type present
// in the portfolio, carrying over the existing display order.
func filterUpdatedSections(updates []types.Section, snapshot *types.PortfolioSnapshot) []types.Section {
	kept := make([]types.Section, 0, len(updates))
	for _, update := range updates {
		existing := snapshot.SectionOfType(update.Type)
		if existing == nil {
			continue
		}
		update.Order = existing.Order
		kept = append(kept, update)
	}
	return kept
}

// dedupeSkills removes duplicate suggestions and skills the portfolio already
// lists, then applies the cap. The existing skills section is tokenized into
// separator-delimited entries plus their individual words and compared
// case-insensitively, so "Go" survives a section that mentions "Google Cloud".
func dedupeSkills(suggestions []string, snapshot *types.PortfolioSnapshot, max int) []string {
	var existing map[string]bool
	if skills := snapshot.SectionOfType(types.SectionSkills); skills != nil {
		existing = skillTokens(skills.Content)
	}

	seen := make(map[string]bool, len(suggestions))
	kept := make([]string, 0, len(suggestions))
	for _, skill := range suggestions {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		lower := strings.ToLower(skill)
		if seen[lower] || existing[lower] {
			continue
		}
		seen[lower] = true
		kept = append(kept, skill)
		if len(kept) == max {
			break
		}
	}
	return kept
}

// skillTokens lowercases a skills section into a lookup set of entries
// (split on commas, semicolons, pipes, bullets, and newlines) and the words
// within each entry, so both "Google Cloud" and "Cloud" count as listed.
func skillTokens(content string) map[string]bool {
	tokens := make(map[string]bool)
	entries := strings.FieldsFunc(content, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || r == '•' || r == '\n'
	})
	for _, entry := range entries {
		entry = strings.ToLower(strings.Trim(entry, "-* \t"))
		if entry == "" {
			continue
		}
		tokens[entry] = true
		for _, word := range strings.Fields(entry) {
			tokens[word] = true
		}
	}
	return tokens
}
