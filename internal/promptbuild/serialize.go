package promptbuild

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/portfolio-studio/internal/types"
)

// Character budgets bound prompt size (and therefore cost and latency) per
// operation class.
const (
	// SectionBudget bounds serialized portfolio content for analyze,
	// recommend, rewrite, and optimize prompts.
	SectionBudget = 12000
	// FreeTextBudget bounds raw job-description and resume text.
	FreeTextBudget = 16000
)

// serializeSections renders sections for prompt inclusion under the given
// character budget. When content exceeds the budget, the most-recently-updated
// sections are kept first; the section that straddles the limit is truncated
// and older sections are omitted entirely.
func serializeSections(sections []types.Section, budget int) string {
	if len(sections) == 0 {
		return ""
	}

	// Decide retention in recency order.
	byRecency := make([]int, len(sections))
	for i := range sections {
		byRecency[i] = i
	}
	sort.SliceStable(byRecency, func(a, b int) bool {
		return sections[byRecency[a]].UpdatedAt.After(sections[byRecency[b]].UpdatedAt)
	})

	remaining := budget
	keep := make(map[int]string, len(sections))
	for _, idx := range byRecency {
		if remaining <= 0 {
			break
		}
		content := sections[idx].Content
		if len(content) > remaining {
			content = truncateAtRuneBoundary(content, remaining) + "…"
		}
		keep[idx] = content
		remaining -= len(content)
	}

	// Render retained sections in display order.
	var sb strings.Builder
	for i, s := range sections {
		content, ok := keep[i]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("### Section %d (type: %s)\n", s.Order, s.Type))
		sb.WriteString(content)
		sb.WriteString("\n\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// truncateText bounds free text (job descriptions, resumes) to the budget.
func truncateText(text string, budget int) string {
	if len(text) <= budget {
		return text
	}
	return truncateAtRuneBoundary(text, budget) + "…"
}

// truncateAtRuneBoundary cuts s to at most limit bytes, backing off so a
// multi-byte rune is never split.
func truncateAtRuneBoundary(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

// joinSectionTypes renders section types as a comma-separated list.
func joinSectionTypes(sectionTypes []types.SectionType) string {
	names := make([]string, len(sectionTypes))
	for i, t := range sectionTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
