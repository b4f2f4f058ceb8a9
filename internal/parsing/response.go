package parsing

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/portfolio-studio/internal/llm"
	"github.com/jonathan/portfolio-studio/internal/schemas"
)

// Score tolerance band. Values inside the band are clamped to [0,100]; values
// outside it mean the model violated the contract rather than rounded, and the
// payload is rejected.
const (
	scoreMin       = 0
	scoreMax       = 100
	scoreTolerance = 10
)

// ExtractJSONBlock locates the first well-formed JSON object in raw completion
// text. The model is instructed to emit exactly one object, but may wrap it in
// code fences or surround it with commentary; both are tolerated.
func ExtractJSONBlock(raw string) (string, error) {
	text := llm.CleanJSONBlock(raw)

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", &ParseError{Message: "no JSON object found in response"}
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", &ParseError{Message: "unterminated JSON object in response"}
}

// repairJSON applies a minimal, safe repair to almost-valid model output:
// trailing commas before a closing bracket or brace are removed. Anything
// beyond that is rejected rather than guessed at.
func repairJSON(block string) string {
	var sb strings.Builder
	sb.Grow(len(block))

	inString := false
	escaped := false
	for i := 0; i < len(block); i++ {
		c := block[i]
		if inString {
			sb.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			sb.WriteByte(c)
			continue
		}
		if c == ',' {
			// Look ahead past whitespace for a closer.
			j := i + 1
			for j < len(block) && (block[j] == ' ' || block[j] == '\t' || block[j] == '\n' || block[j] == '\r') {
				j++
			}
			if j < len(block) && (block[j] == '}' || block[j] == ']') {
				continue
			}
		}
		sb.WriteByte(c)
	}

	return sb.String()
}

// Decode extracts the structured block from raw completion text, validates it
// against the named operation schema, and unmarshals it into out.
func Decode(raw, schemaName string, out any) error {
	block, err := ExtractJSONBlock(raw)
	if err != nil {
		return err
	}

	if !json.Valid([]byte(block)) {
		block = repairJSON(block)
		if !json.Valid([]byte(block)) {
			return &ParseError{Message: "response block is not valid JSON"}
		}
	}

	if err := schemas.Validate(schemaName, block); err != nil {
		return &ParseError{
			Message: fmt.Sprintf("response violates %s contract", schemaName),
			Cause:   err,
		}
	}

	if err := json.Unmarshal([]byte(block), out); err != nil {
		return &ParseError{Message: "failed to decode validated response", Cause: err}
	}

	return nil
}

// CoerceScore bounds a model-supplied numeric score. Values within the
// tolerance band around [0,100] are clamped; values wildly out of range are a
// contract violation, not a clamp target.
func CoerceScore(value float64) (int, error) {
	if value < scoreMin-scoreTolerance || value > scoreMax+scoreTolerance {
		return 0, &ParseError{
			Message: fmt.Sprintf("score %.1f outside tolerance band [%d,%d]", value, scoreMin-scoreTolerance, scoreMax+scoreTolerance),
		}
	}
	if value < scoreMin {
		return scoreMin, nil
	}
	if value > scoreMax {
		return scoreMax, nil
	}
	return int(value + 0.5), nil
}
