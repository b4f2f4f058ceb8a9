package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoadsEmbeddedPrompts(t *testing.T) {
	ClearCache()

	tests := []struct {
		file string
		key  string
	}{
		{"analysis.json", "analyze-preamble"},
		{"analysis.json", "analyze-input-header"},
		{"recommendation.json", "recommend-preamble"},
		{"rewriting.json", "rewrite-preamble"},
		{"optimization.json", "optimize-preamble"},
		{"generation.json", "generate-preamble"},
	}
	for _, tt := range tests {
		prompt, err := Get(tt.file, tt.key)
		require.NoError(t, err, "%s/%s", tt.file, tt.key)
		assert.NotEmpty(t, prompt)
	}
}

func TestGetUnknownFileAndKey(t *testing.T) {
	_, err := Get("nonexistent.json", "key")
	assert.Error(t, err)

	_, err = Get("analysis.json", "no-such-key")
	assert.Error(t, err)
}

func TestFormatReplacesPlaceholders(t *testing.T) {
	result := Format("rewrite in a {{.Tone}} tone, at most {{.MaxWords}} words", map[string]string{
		"Tone":     "formal",
		"MaxWords": "120",
	})
	assert.Equal(t, "rewrite in a formal tone, at most 120 words", result)
}

func TestFormatLeavesUnknownPlaceholders(t *testing.T) {
	result := Format("{{.Known}} and {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "x and {{.Unknown}}", result)
}
