package types

// TemplateThemeRecommendation suggests a template, theme, and section ordering.
// Identifiers are guaranteed to reference existing catalog entries; the pipeline
// substitutes the top catalog entry when the model suggests an unknown id.
type TemplateThemeRecommendation struct {
	RecommendedTemplate     string        `json:"recommended_template"`
	RecommendedTheme        string        `json:"recommended_theme"`
	RecommendedSectionOrder []SectionType `json:"recommended_section_order"`
	Rationale               string        `json:"rationale"`
}

// RewriteResult holds sections rewritten in a requested tone.
// Section count, types, and ordering always match the input snapshot exactly.
type RewriteResult struct {
	Tone     Tone      `json:"tone"`
	Sections []Section `json:"sections"`
}

// JobOptimizationResult is the outcome of optimizing a portfolio for a job description.
type JobOptimizationResult struct {
	UpdatedSections []Section `json:"updated_sections"`
	SuggestedSkills []string  `json:"suggested_skills"`
	JobInsights     string    `json:"job_insights"`
}

// GeneratedPortfolioDraft is a portfolio draft extracted from resume text.
// Warnings records extracted entities that were dropped because they could not
// be traced back to the source resume.
type GeneratedPortfolioDraft struct {
	Sections          []Section `json:"sections"`
	SuggestedTemplate string    `json:"suggested_template"`
	SuggestedTheme    string    `json:"suggested_theme"`
	Warnings          []string  `json:"warnings,omitempty"`
}
