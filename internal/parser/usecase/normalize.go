package usecase

import (
	"context"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"nl-task-parser/internal/model"
	"nl-task-parser/internal/parser"
	"nl-task-parser/pkg/datemath"
)

// normalizeTasks cleans every raw task and drops those left without a
// name or assignee. Order of the survivors is preserved.
func (uc *implUseCase) normalizeTasks(ctx context.Context, raws []parser.RawTask, now time.Time) []model.Task {
	tasks := make([]model.Task, 0, len(raws))
	for i, raw := range raws {
		t := model.Task{
			TaskName: cleanTaskName(raw.TaskName),
			Assignee: cleanAssignee(raw.Assignee),
			DueDate:  validateDate(uc.dateMath, raw.DueDate, now),
			DueTime:  validateTime(raw.DueTime),
			Priority: validatePriority(raw.Priority),
		}
		if t.TaskName == "" || t.Assignee == "" {
			uc.l.Warnf(ctx, "internal.parser.usecase.normalizeTasks: dropping task %d: taskName=%q assignee=%q", i, raw.TaskName, raw.Assignee)
			uc.metrics.taskDropped()
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks
}

// cleanTaskName collapses whitespace, upper-cases the first letter and
// lower-cases the rest.
func cleanTaskName(s string) string {
	cleaned := strings.Join(strings.Fields(s), " ")
	if cleaned == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(cleaned)
	return string(unicode.ToUpper(r)) + strings.ToLower(cleaned[size:])
}

// cleanAssignee collapses whitespace and title-cases every word.
func cleanAssignee(s string) string {
	cleaned := strings.Join(strings.Fields(s), " ")
	if cleaned == "" {
		return ""
	}
	// A Caser holds state, so one is built per call.
	return cases.Title(language.Und).String(cleaned)
}

// validateDate keeps a real calendar date unchanged and substitutes
// tomorrow otherwise. Surrounding whitespace makes the value invalid.
func validateDate(dm *datemath.Parser, s string, now time.Time) string {
	if datemath.IsCalendarDate(s) {
		return s
	}
	return dm.Tomorrow(now)
}

// validateTime keeps a real 24-hour clock time and substitutes 17:00 otherwise.
func validateTime(s string) string {
	if datemath.IsClockTime(s) {
		return s
	}
	return DefaultDueTime
}

func validatePriority(s string) model.Priority {
	p := model.Priority(s)
	if p.Valid() {
		return p
	}
	return model.DefaultPriority
}
