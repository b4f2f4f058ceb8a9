// Package catalog provides the static template and theme catalogs used for
// recommendation validation and lookup.
package catalog

import "github.com/jonathan/portfolio-studio/internal/types"

// Template describes a portfolio page layout.
type Template struct {
	ID                string
	Name              string
	Description       string
	Layout            string
	SupportedSections []types.SectionType
}

// Theme describes a visual theme applied on top of a template.
type Theme struct {
	ID          string
	Name        string
	Description string
}

// templates is ordered; the first entry is the deterministic fallback when the
// model recommends an id outside the catalog.
var templates = []Template{
	{
		ID:          "modern",
		Name:        "Modern",
		Description: "Single-column layout with a prominent summary and project grid.",
		Layout:      "single-column",
		SupportedSections: []types.SectionType{
			types.SectionSummary, types.SectionExperience, types.SectionProject,
			types.SectionCertification, types.SectionSkills, types.SectionEducation,
			types.SectionContact, types.SectionCustom,
		},
	},
	{
		ID:          "classic",
		Name:        "Classic",
		Description: "Traditional two-column resume-style layout.",
		Layout:      "two-column",
		SupportedSections: []types.SectionType{
			types.SectionSummary, types.SectionExperience, types.SectionCertification,
			types.SectionSkills, types.SectionEducation, types.SectionContact,
		},
	},
	{
		ID:          "minimal",
		Name:        "Minimal",
		Description: "Sparse typographic layout emphasizing written content.",
		Layout:      "single-column",
		SupportedSections: []types.SectionType{
			types.SectionSummary, types.SectionExperience, types.SectionProject,
			types.SectionSkills, types.SectionContact,
		},
	},
	{
		ID:          "showcase",
		Name:        "Showcase",
		Description: "Project-first layout for design and engineering portfolios.",
		Layout:      "grid",
		SupportedSections: []types.SectionType{
			types.SectionProject, types.SectionSummary, types.SectionSkills,
			types.SectionExperience, types.SectionContact, types.SectionCustom,
		},
	},
}

var themes = []Theme{
	{ID: "slate", Name: "Slate", Description: "Muted grays with a single accent color."},
	{ID: "midnight", Name: "Midnight", Description: "Dark background, high-contrast text."},
	{ID: "paper", Name: "Paper", Description: "Light, print-friendly palette."},
	{ID: "forest", Name: "Forest", Description: "Deep greens with warm highlights."},
	{ID: "ember", Name: "Ember", Description: "Warm oranges on charcoal."},
}

// Templates returns the template catalog in recommendation-fallback order.
func Templates() []Template {
	return templates
}

// Themes returns the theme catalog in recommendation-fallback order.
func Themes() []Theme {
	return themes
}

// TemplateByID looks up a template by id.
func TemplateByID(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// ThemeByID looks up a theme by id.
func ThemeByID(id string) (Theme, bool) {
	for _, t := range themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// DefaultTemplate returns the fallback template (top catalog entry).
func DefaultTemplate() Template {
	return templates[0]
}

// DefaultTheme returns the fallback theme (top catalog entry).
func DefaultTheme() Theme {
	return themes[0]
}

// TemplateIDs returns all template ids in catalog order.
func TemplateIDs() []string {
	ids := make([]string, len(templates))
	for i, t := range templates {
		ids[i] = t.ID
	}
	return ids
}

// ThemeIDs returns all theme ids in catalog order.
func ThemeIDs() []string {
	ids := make([]string, len(themes))
	for i, t := range themes {
		ids[i] = t.ID
	}
	return ids
}
