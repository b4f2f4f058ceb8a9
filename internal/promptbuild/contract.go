// Package promptbuild assembles bounded prompts with strict output-contract
// directives for each pipeline operation.
package promptbuild

import (
	"fmt"
	"strings"
)

// ResponseContract declares the exact JSON shape the model must return.
// The directive it renders is the prompt-side half of the output contract;
// the parser enforces the schema-side half.
type ResponseContract struct {
	Name   string          // Contract name (e.g., "AnalysisSignals")
	Fields []ContractField // Expected top-level fields
}

// ContractField declares a single field in the expected output object.
type ContractField struct {
	Name        string // JSON field name
	Type        string // Type hint shown to the model
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// Directive renders the output-contract instruction appended to every prompt.
func (c ResponseContract) Directive() string {
	var sb strings.Builder

	sb.WriteString("Return ONLY a single valid JSON object matching this exact structure:\n{\n")
	for i, field := range c.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  %q: %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(c.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Use exactly the keys listed above; no extra keys.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n")

	return sb.String()
}
