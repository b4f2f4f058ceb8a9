package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code fence",
			input:    "```json\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "generic code fence",
			input:    "```\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "fence with language identifier",
			input:    "```javascript\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "no fence",
			input:    `{"a": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n{\"a\": 1}\n  ",
			expected: `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}
