package promptbuild

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-studio/internal/types"
)

func buildSnapshot() *types.PortfolioSnapshot {
	return &types.PortfolioSnapshot{
		UserID:   "user-1",
		Template: "modern",
		Theme:    "slate",
		Sections: []types.Section{
			{Type: types.SectionSummary, Content: "A concise summary.", Order: 0, UpdatedAt: time.Now()},
			{Type: types.SectionSkills, Content: "Go, SQL", Order: 1, UpdatedAt: time.Now()},
		},
	}
}

func TestAnalyzePromptContainsSectionsAndContract(t *testing.T) {
	prompt := Analyze(buildSnapshot())

	assert.Contains(t, prompt, "A concise summary.")
	assert.Contains(t, prompt, "Go, SQL")
	assert.Contains(t, prompt, `"dimensions"`)
	assert.Contains(t, prompt, `"recommendations"`)
	assert.Contains(t, prompt, "Return ONLY the JSON object")
}

func TestRewritePromptCarriesToneAndCap(t *testing.T) {
	prompt := Rewrite(buildSnapshot(), types.ToneConfident, 150)

	assert.Contains(t, prompt, "confident")
	assert.Contains(t, prompt, "150")
	assert.NotContains(t, prompt, "{{.Tone}}")
	assert.NotContains(t, prompt, "{{.MaxWords}}")
}

func TestRecommendPromptListsCatalogIDs(t *testing.T) {
	prompt := Recommend(buildSnapshot())

	assert.Contains(t, prompt, "modern")
	assert.Contains(t, prompt, "slate")
	assert.Contains(t, prompt, "summary, skills")
	assert.NotContains(t, prompt, "{{.")
}

func TestOptimizePromptIncludesJobDescription(t *testing.T) {
	prompt := Optimize(buildSnapshot(), "We need a platform engineer.", 10)

	assert.Contains(t, prompt, "We need a platform engineer.")
	assert.Contains(t, prompt, "10")
	assert.Contains(t, prompt, `"suggested_skills"`)
}

func TestGeneratePromptIncludesResumeAndSectionTypes(t *testing.T) {
	prompt := Generate("resume body text")

	assert.Contains(t, prompt, "resume body text")
	for _, st := range types.SectionTypes() {
		assert.Contains(t, prompt, string(st))
	}
}

func TestSerializeSectionsKeepsRecentUnderBudget(t *testing.T) {
	old := time.Now().Add(-48 * time.Hour)
	recent := time.Now()

	sections := []types.Section{
		{Type: types.SectionSummary, Content: strings.Repeat("a", 80), Order: 0, UpdatedAt: old},
		{Type: types.SectionExperience, Content: strings.Repeat("b", 80), Order: 1, UpdatedAt: recent},
	}

	// Budget fits the recent section and part of the old one.
	out := serializeSections(sections, 100)

	assert.Contains(t, out, strings.Repeat("b", 80))
	assert.NotContains(t, out, strings.Repeat("a", 30))
	// The straddling section is truncated, not dropped.
	assert.Contains(t, out, strings.Repeat("a", 20))

	// Display order wins over recency order in the rendered output.
	require.Less(t, strings.Index(out, "type: summary"), strings.Index(out, "type: experience"))
}

func TestSerializeSectionsDropsBeyondBudget(t *testing.T) {
	old := time.Now().Add(-48 * time.Hour)
	recent := time.Now()

	sections := []types.Section{
		{Type: types.SectionSummary, Content: strings.Repeat("a", 100), Order: 0, UpdatedAt: old},
		{Type: types.SectionExperience, Content: strings.Repeat("b", 100), Order: 1, UpdatedAt: recent},
	}

	out := serializeSections(sections, 100)

	assert.Contains(t, out, "type: experience")
	assert.NotContains(t, out, "type: summary")
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", truncateText("short", 100))

	long := strings.Repeat("x", 200)
	out := truncateText(long, 100)
	assert.True(t, strings.HasPrefix(out, strings.Repeat("x", 100)))
	assert.Less(t, len(out), 200)
}

func TestTruncateTextNeverSplitsRunes(t *testing.T) {
	// Two-byte runes with an odd byte limit force a mid-rune cut.
	text := strings.Repeat("é", 60)
	out := truncateText(text, 5)

	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, strings.Repeat("é", 2)+"…", out)
}

func TestSerializeSectionsTruncatesAtRuneBoundary(t *testing.T) {
	sections := []types.Section{
		{Type: types.SectionSummary, Content: strings.Repeat("ü", 80), Order: 0, UpdatedAt: time.Now()},
	}

	out := serializeSections(sections, 101)
	assert.True(t, utf8.ValidString(out))
}
