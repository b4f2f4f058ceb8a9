package promptbuild

import (
	"fmt"
	"strings"

	"github.com/jonathan/portfolio-studio/internal/catalog"
	"github.com/jonathan/portfolio-studio/internal/prompts"
	"github.com/jonathan/portfolio-studio/internal/types"
)

// AnalysisContract is the output contract for the analyze operation.
func AnalysisContract() ResponseContract {
	return ResponseContract{
		Name: "AnalysisSignals",
		Fields: []ContractField{
			{
				Name:        "dimensions",
				Type:        `{"clarity": {"signal": "string", "evidence": "string"}, ... one entry per dimension}`,
				Description: "one entry for each of: clarity, technicalDepth, seniority, atsAlignment, completeness, toneConsistency",
				Required:    true,
			},
			{
				Name:        "recommendations",
				Type:        `[{"title": "string", "dimension": "string", "description": "string", "suggested_rewrite": "string"}]`,
				Description: "improvement suggestions, most important first; suggested_rewrite only for severe weaknesses",
				Required:    true,
			},
		},
	}
}

// RecommendationContract is the output contract for template/theme recommendation.
func RecommendationContract() ResponseContract {
	return ResponseContract{
		Name: "TemplateThemeRecommendation",
		Fields: []ContractField{
			{Name: "recommended_template", Type: `"string"`, Description: "a template id from the catalog", Required: true},
			{Name: "recommended_theme", Type: `"string"`, Description: "a theme id from the catalog", Required: true},
			{Name: "recommended_section_order", Type: `["string"]`, Description: "permutation of the section types present", Required: true},
			{Name: "rationale", Type: `"string"`, Description: "brief reasoning", Required: true},
		},
	}
}

// RewriteContract is the output contract for tone rewriting.
func RewriteContract() ResponseContract {
	return ResponseContract{
		Name: "RewriteResult",
		Fields: []ContractField{
			{
				Name:        "sections",
				Type:        `[{"type": "string", "order": number, "content": "string"}]`,
				Description: "every input section with content rewritten; type and order unchanged",
				Required:    true,
			},
		},
	}
}

// OptimizationContract is the output contract for job optimization.
func OptimizationContract() ResponseContract {
	return ResponseContract{
		Name: "JobOptimizationResult",
		Fields: []ContractField{
			{
				Name:        "updated_sections",
				Type:        `[{"type": "string", "order": number, "content": "string"}]`,
				Description: "sections adjusted toward the job description",
				Required:    true,
			},
			{Name: "suggested_skills", Type: `["string"]`, Description: "job-relevant skills missing from the portfolio", Required: true},
			{Name: "job_insights", Type: `"string"`, Description: "what this job values and how the portfolio was aligned", Required: true},
		},
	}
}

// GenerationContract is the output contract for resume-to-portfolio generation.
func GenerationContract() ResponseContract {
	return ResponseContract{
		Name: "GeneratedPortfolioDraft",
		Fields: []ContractField{
			{
				Name:        "sections",
				Type:        `[{"type": "string", "order": number, "content": "string"}]`,
				Description: "portfolio sections extracted from the resume",
				Required:    true,
			},
			{Name: "suggested_template", Type: `"string"`, Description: "a template id from the catalog", Required: true},
			{Name: "suggested_theme", Type: `"string"`, Description: "a theme id from the catalog", Required: true},
		},
	}
}

// Analyze builds the prompt for portfolio analysis.
func Analyze(snapshot *types.PortfolioSnapshot) string {
	var sb strings.Builder
	sb.WriteString(prompts.MustGet("analysis.json", "analyze-preamble"))
	sb.WriteString("\n\n")
	sb.WriteString(prompts.MustGet("analysis.json", "analyze-input-header"))
	sb.WriteString("\n")
	sb.WriteString(serializeSections(snapshot.Sections, SectionBudget))
	sb.WriteString("\n\n")
	sb.WriteString(AnalysisContract().Directive())
	return sb.String()
}

// Recommend builds the prompt for template/theme recommendation.
func Recommend(snapshot *types.PortfolioSnapshot) string {
	preamble := prompts.Format(prompts.MustGet("recommendation.json", "recommend-preamble"), map[string]string{
		"TemplateIDs":  strings.Join(catalog.TemplateIDs(), ", "),
		"ThemeIDs":     strings.Join(catalog.ThemeIDs(), ", "),
		"SectionTypes": joinSectionTypes(snapshot.SectionTypesPresent()),
	})

	var sb strings.Builder
	sb.WriteString(preamble)
	sb.WriteString("\n\n")
	sb.WriteString(prompts.MustGet("recommendation.json", "recommend-input-header"))
	sb.WriteString("\n")
	sb.WriteString(serializeSections(snapshot.Sections, SectionBudget))
	sb.WriteString("\n\n")
	sb.WriteString(RecommendationContract().Directive())
	return sb.String()
}

// Rewrite builds the prompt for tone rewriting. Tone and maxWords must already
// be validated by the caller.
func Rewrite(snapshot *types.PortfolioSnapshot, tone types.Tone, maxWords int) string {
	preamble := prompts.Format(prompts.MustGet("rewriting.json", "rewrite-preamble"), map[string]string{
		"Tone":     string(tone),
		"MaxWords": fmt.Sprintf("%d", maxWords),
	})

	var sb strings.Builder
	sb.WriteString(preamble)
	sb.WriteString("\n\n")
	sb.WriteString(prompts.MustGet("rewriting.json", "rewrite-input-header"))
	sb.WriteString("\n")
	sb.WriteString(serializeSections(snapshot.Sections, SectionBudget))
	sb.WriteString("\n\n")
	sb.WriteString(RewriteContract().Directive())
	return sb.String()
}

// Optimize builds the prompt for job-description optimization.
func Optimize(snapshot *types.PortfolioSnapshot, jobDescription string, maxSkills int) string {
	preamble := prompts.Format(prompts.MustGet("optimization.json", "optimize-preamble"), map[string]string{
		"MaxSkills": fmt.Sprintf("%d", maxSkills),
	})

	var sb strings.Builder
	sb.WriteString(preamble)
	sb.WriteString("\n\n")
	sb.WriteString(prompts.MustGet("optimization.json", "optimize-jd-header"))
	sb.WriteString("\n")
	sb.WriteString(truncateText(jobDescription, FreeTextBudget))
	sb.WriteString("\n\n")
	sb.WriteString(prompts.MustGet("optimization.json", "optimize-input-header"))
	sb.WriteString("\n")
	sb.WriteString(serializeSections(snapshot.Sections, SectionBudget))
	sb.WriteString("\n\n")
	sb.WriteString(OptimizationContract().Directive())
	return sb.String()
}

// Generate builds the prompt for resume-to-portfolio generation.
func Generate(resumeText string) string {
	preamble := prompts.Format(prompts.MustGet("generation.json", "generate-preamble"), map[string]string{
		"SectionTypes": joinSectionTypes(types.SectionTypes()),
		"TemplateIDs":  strings.Join(catalog.TemplateIDs(), ", "),
		"ThemeIDs":     strings.Join(catalog.ThemeIDs(), ", "),
	})

	var sb strings.Builder
	sb.WriteString(preamble)
	sb.WriteString("\n\n")
	sb.WriteString(prompts.MustGet("generation.json", "generate-input-header"))
	sb.WriteString("\n")
	sb.WriteString(truncateText(resumeText, FreeTextBudget))
	sb.WriteString("\n\n")
	sb.WriteString(GenerationContract().Directive())
	return sb.String()
}
