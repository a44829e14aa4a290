package response

import "time"

const (
	// DefaultErrorMessage is the body message of every 500 response.
	DefaultErrorMessage = "Internal server error"

	ErrorBadRequest         = "bad_request"
	ErrorInternal           = "internal_error"
	ErrorServiceUnavailable = "service_unavailable"

	DateTimeFormat = time.RFC3339
)
