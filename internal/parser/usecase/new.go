package usecase

import (
	"time"

	"nl-task-parser/internal/parser"
	"nl-task-parser/pkg/datemath"
	pkgLog "nl-task-parser/pkg/log"
)

type implUseCase struct {
	l             pkgLog.Logger
	completer     parser.Completer
	dateMath      *datemath.Parser
	clock         datemath.Clock
	referenceDate time.Time
	metrics       *Metrics
}

// New creates a new parser UseCase instance.
// referenceDate is the "today" embedded in prompts; metrics may be nil.
func New(
	l pkgLog.Logger,
	completer parser.Completer,
	dateMath *datemath.Parser,
	clock datemath.Clock,
	referenceDate time.Time,
	metrics *Metrics,
) parser.UseCase {
	if clock == nil {
		clock = datemath.SystemClock{}
	}
	return &implUseCase{
		l:             l,
		completer:     completer,
		dateMath:      dateMath,
		clock:         clock,
		referenceDate: referenceDate,
		metrics:       metrics,
	}
}
