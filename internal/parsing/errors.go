// Package parsing extracts and validates structured payloads from raw
// completion text. Every field of a completion is treated as untrusted input:
// the payload must pass its operation schema, enum checks, and numeric bounds
// before it becomes a typed result.
package parsing

import "fmt"

// ParseError indicates the completion service responded but violated the
// output contract: no structured block, malformed JSON, a missing key, a wrong
// type, or an out-of-range value. It is a terminal, non-retryable failure for
// the request.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
