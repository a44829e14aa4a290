package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"nl-task-parser/internal/model"
)

type fallbackPattern struct {
	re       *regexp.Regexp
	task     int
	assignee int
	due      int
}

// Patterns run in order over the whole text and every match of each is kept.
// Word groups accept any Unicode letter so accented names match.
var fallbackPatterns = []fallbackPattern{
	// "<task> [for] <assignee> by <due>"
	{re: regexp.MustCompile(`(?i)([^,]+?)\s+(?:for\s+)?([\p{L}\p{N}_]+)\s+by\s+([^,]+)`), task: 1, assignee: 2, due: 3},
	// "<assignee> [should] <task> by <due>"
	{re: regexp.MustCompile(`(?i)([\p{L}\p{N}_]+)\s+(?:should\s+)?([^,]+?)\s+by\s+([^,]+)`), task: 2, assignee: 1, due: 3},
}

// fallbackParse extracts tasks with regular expressions. It never fails
// and always returns at least one task.
func (uc *implUseCase) fallbackParse(ctx context.Context, text string, now time.Time) []model.Task {
	var tasks []model.Task
	for _, p := range fallbackPatterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			t := model.Task{
				TaskName: cleanTaskName(m[p.task]),
				Assignee: cleanAssignee(m[p.assignee]),
				DueDate:  uc.fallbackDate(m[p.due], now),
				DueTime:  DefaultDueTime,
				Priority: model.DefaultPriority,
			}
			if t.TaskName == "" || t.Assignee == "" {
				continue
			}
			tasks = append(tasks, t)
		}
	}

	if len(tasks) == 0 {
		uc.l.Infof(ctx, "internal.parser.usecase.fallbackParse: no pattern matched, returning placeholder task")
		return []model.Task{{
			TaskName: PlaceholderTaskName,
			Assignee: PlaceholderAssignee,
			DueDate:  uc.dateMath.Tomorrow(now),
			DueTime:  DefaultDueTime,
			Priority: model.DefaultPriority,
		}}
	}
	return tasks
}

// fallbackDate recognizes only "today" and "tomorrow" in the due phrase.
func (uc *implUseCase) fallbackDate(phrase string, now time.Time) string {
	lower := strings.ToLower(phrase)
	switch {
	case strings.Contains(lower, "tomorrow"):
		return uc.dateMath.Tomorrow(now)
	case strings.Contains(lower, "today"):
		return uc.dateMath.Today(now)
	default:
		return uc.dateMath.Tomorrow(now)
	}
}
