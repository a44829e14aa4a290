package parser

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the parser package.
var (
	ErrInvalidInput    = errors.New("input text cannot be empty")
	ErrUpstream        = errors.New("completion upstream error")
	ErrInvalidResponse = errors.New("invalid JSON response from completion")
	ErrSchemaViolation = errors.New("completion response violates task schema")
)

// SchemaError names the task index and field that failed validation.
// Index is -1 for document-level problems such as a missing "tasks" key.
type SchemaError struct {
	Index  int
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s: %s", ErrSchemaViolation, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: task %d: %s: %s", ErrSchemaViolation, e.Index, e.Field, e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return ErrSchemaViolation
}
