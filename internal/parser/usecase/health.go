package usecase

import (
	"context"
	"fmt"

	"nl-task-parser/internal/parser"
)

// Health probes the completion upstream. A failed probe means degraded
// since the fallback still serves requests.
func (uc *implUseCase) Health(ctx context.Context) (out parser.HealthOutput) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "internal.parser.usecase.Health: probe panicked: %v", r)
			out = parser.HealthOutput{
				Status:    parser.StatusUnhealthy,
				Timestamp: uc.clock.Now(),
				Error:     fmt.Sprint(r),
			}
		}
	}()

	connected := uc.completer.Probe(ctx)

	status := parser.StatusHealthy
	if !connected {
		status = parser.StatusDegraded
		uc.l.Warnf(ctx, "internal.parser.usecase.Health: completion upstream unreachable")
	}

	return parser.HealthOutput{
		Status:            status,
		OpenAIConnection:  connected,
		FallbackAvailable: true,
		Timestamp:         uc.clock.Now(),
	}
}
