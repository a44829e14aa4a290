package http

import (
	"errors"

	"nl-task-parser/internal/parser"
)

const (
	errMsgParseFailed = "Failed to parse natural language input"
	errMsgUnhealthy   = "Service unhealthy"
)

// isClientError reports whether err is caused by the request itself.
func isClientError(err error) bool {
	return errors.Is(err, parser.ErrInvalidInput)
}
