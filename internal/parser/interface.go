package parser

import "context"

// UseCase turns free-form text into task records.
//
//go:generate mockery --name UseCase --output ./mocks
type UseCase interface {
	// Parse extracts tasks, trying the completion path first and the regex fallback on any failure.
	// The only error returned is ErrInvalidInput.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	// Health probes the completion upstream.
	Health(ctx context.Context) HealthOutput
}

// Completer obtains schema-valid raw tasks from a language model.
type Completer interface {
	// Complete sends prompt once. Errors wrap ErrUpstream, ErrInvalidResponse or ErrSchemaViolation.
	Complete(ctx context.Context, prompt string) ([]RawTask, error)

	// Probe reports whether the upstream answers a minimal request.
	Probe(ctx context.Context) bool
}
