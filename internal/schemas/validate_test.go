package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validAnalysis = `{
	"dimensions": {
		"clarity": {"signal": "good", "evidence": "clear summary"},
		"technicalDepth": {"signal": "strong"},
		"seniority": {"signal": "good", "score": 62},
		"atsAlignment": {"signal": "fair"},
		"completeness": {"signal": "poor"},
		"toneConsistency": {"signal": "good"}
	},
	"recommendations": [
		{"title": "t", "description": "d", "dimension": "completeness"}
	]
}`

func TestValidateAnalysisSignals(t *testing.T) {
	require.NoError(t, Validate(AnalysisSignals, validAnalysis))
}

func TestValidateAnalysisRejectsMissingDimension(t *testing.T) {
	payload := `{
		"dimensions": {"clarity": {"signal": "good"}},
		"recommendations": []
	}`
	err := Validate(AnalysisSignals, payload)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateAnalysisRejectsUnknownSignal(t *testing.T) {
	payload := `{
		"dimensions": {
			"clarity": {"signal": "amazing"},
			"technicalDepth": {"signal": "strong"},
			"seniority": {"signal": "good"},
			"atsAlignment": {"signal": "fair"},
			"completeness": {"signal": "poor"},
			"toneConsistency": {"signal": "good"}
		},
		"recommendations": []
	}`
	assert.Error(t, Validate(AnalysisSignals, payload))
}

func TestValidateRewriteResult(t *testing.T) {
	valid := `{"sections": [{"type": "summary", "order": 0, "content": "text"}]}`
	require.NoError(t, Validate(RewriteResult, valid))

	// Unknown section type.
	invalid := `{"sections": [{"type": "hobbies", "order": 0, "content": "text"}]}`
	assert.Error(t, Validate(RewriteResult, invalid))

	// Empty sections array.
	assert.Error(t, Validate(RewriteResult, `{"sections": []}`))
}

func TestValidateTemplateRecommendation(t *testing.T) {
	valid := `{
		"recommended_template": "modern",
		"recommended_theme": "slate",
		"recommended_section_order": ["summary", "skills"],
		"rationale": "clean layout"
	}`
	require.NoError(t, Validate(TemplateRecommendation, valid))

	missing := `{"recommended_template": "modern", "recommended_theme": "slate"}`
	assert.Error(t, Validate(TemplateRecommendation, missing))
}

func TestValidateJobOptimization(t *testing.T) {
	valid := `{
		"updated_sections": [{"type": "summary", "order": 0, "content": "x"}],
		"suggested_skills": ["Kubernetes"],
		"job_insights": "infra heavy"
	}`
	require.NoError(t, Validate(JobOptimization, valid))

	assert.Error(t, Validate(JobOptimization, `{"updated_sections": []}`))
}

func TestValidatePortfolioDraft(t *testing.T) {
	valid := `{
		"sections": [{"type": "summary", "order": 0, "content": "x"}],
		"suggested_template": "modern",
		"suggested_theme": "slate"
	}`
	require.NoError(t, Validate(PortfolioDraft, valid))

	assert.Error(t, Validate(PortfolioDraft, `{"sections": [], "suggested_template": "m", "suggested_theme": "s"}`))
}

func TestValidateUnknownSchema(t *testing.T) {
	assert.Error(t, Validate("no_such_schema", `{}`))
}
