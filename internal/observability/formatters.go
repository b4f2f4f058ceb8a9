// Package observability provides logger construction and formatted CLI output.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/portfolio-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of an analysis result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall score: %d/100\n\n", result.OverallScore))

	sb.WriteString("Subscores:\n")
	for _, dim := range types.Dimensions() {
		sb.WriteString(fmt.Sprintf("  %-16s %3d\n", dim, result.Subscores[dim]))
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(result.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			rec := result.Recommendations[i]
			marker := " "
			if rec.Critical {
				marker = "!"
			}
			sb.WriteString(fmt.Sprintf("  %s %s (%s)\n", marker, rec.Title, rec.Dimension))
		}
		if len(result.Recommendations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Recommendations)-maxItemsToShow))
		}
	}

	p.printBox("PORTFOLIO ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendation outputs a template/theme recommendation.
func (p *Printer) PrintRecommendation(rec *types.TemplateThemeRecommendation) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template: %s\n", rec.RecommendedTemplate))
	sb.WriteString(fmt.Sprintf("Theme:    %s\n", rec.RecommendedTheme))

	if len(rec.RecommendedSectionOrder) > 0 {
		names := make([]string, len(rec.RecommendedSectionOrder))
		for i, t := range rec.RecommendedSectionOrder {
			names[i] = string(t)
		}
		sb.WriteString(fmt.Sprintf("Order:    %s\n", strings.Join(names, " > ")))
	}
	if rec.Rationale != "" {
		sb.WriteString("\n" + rec.Rationale)
	}

	p.printBox("TEMPLATE RECOMMENDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRewrite outputs a summary of a tone rewrite.
func (p *Printer) PrintRewrite(result *types.RewriteResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tone: %s\n", result.Tone))
	sb.WriteString(fmt.Sprintf("Sections rewritten: %d\n", len(result.Sections)))

	count := min(len(result.Sections), maxItemsToShow)
	for i := 0; i < count; i++ {
		section := result.Sections[i]
		preview := section.Content
		if len(preview) > 40 {
			preview = preview[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %-14s %s\n", section.Type, preview))
	}

	p.printBox("PORTFOLIO REWRITE", strings.TrimSuffix(sb.String(), "\n"))
}
