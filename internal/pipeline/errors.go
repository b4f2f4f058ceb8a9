package pipeline

import "fmt"

// ValidationError reports caller input that fails precondition checks. It is
// always raised before any completion call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Message
}

// EmptyInputError reports an operation invoked against a portfolio with no
// usable content.
type EmptyInputError struct {
	Message string
}

func (e *EmptyInputError) Error() string {
	return "empty input: " + e.Message
}

// NotFoundError reports a missing resource.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}
