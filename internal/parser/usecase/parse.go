package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"nl-task-parser/internal/model"
	"nl-task-parser/internal/parser"
)

// Parse extracts tasks from free-form text. Any failure of the completion
// path is absorbed by the regex fallback, so ErrInvalidInput is the only
// error a caller can see.
func (uc *implUseCase) Parse(ctx context.Context, input parser.ParseInput) (parser.ParseOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		uc.metrics.parsed(pathRejected, 0)
		return parser.ParseOutput{}, parser.ErrInvalidInput
	}

	uc.l.Infof(ctx, "internal.parser.usecase.Parse: text=%q", truncate(input.Text, logTextPreviewLen))

	now := uc.clock.Now()

	tasks, err := uc.parsePrimary(ctx, input.Text, now)
	if err != nil {
		uc.l.Warnf(ctx, "internal.parser.usecase.Parse: completion failed, using fallback: %v", err)

		tasks = uc.fallbackParse(ctx, input.Text, now)
		uc.metrics.parsed(string(parser.SourceFallback), len(tasks))
		uc.l.Infof(ctx, "internal.parser.usecase.Parse: fallback returned %d tasks", len(tasks))

		return parser.ParseOutput{Tasks: tasks, Source: parser.SourceFallback}, nil
	}

	uc.metrics.parsed(string(parser.SourcePrimary), len(tasks))
	uc.l.Infof(ctx, "internal.parser.usecase.Parse: completion returned %d tasks", len(tasks))

	return parser.ParseOutput{Tasks: tasks, Source: parser.SourcePrimary}, nil
}

func (uc *implUseCase) parsePrimary(ctx context.Context, text string, now time.Time) ([]model.Task, error) {
	prompt := BuildPrompt(uc.dateMath, text, uc.referenceDate)

	start := time.Now()
	raws, err := uc.completer.Complete(ctx, prompt)
	uc.metrics.completionObserved(completionOutcome(err), time.Since(start))
	if err != nil {
		return nil, err
	}

	return uc.normalizeTasks(ctx, raws, now), nil
}

func completionOutcome(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, parser.ErrUpstream):
		return outcomeUpstreamError
	case errors.Is(err, parser.ErrInvalidResponse):
		return outcomeInvalidResponse
	case errors.Is(err, parser.ErrSchemaViolation):
		return outcomeSchemaViolation
	default:
		return outcomeOther
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
