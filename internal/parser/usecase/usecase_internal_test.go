package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nl-task-parser/internal/model"
	"nl-task-parser/internal/parser"
	"nl-task-parser/pkg/datemath"
	"nl-task-parser/pkg/log"
)

func TestCleanTaskName(t *testing.T) {
	tests := map[string]string{
		"":                       "",
		"   ":                    "",
		"finish landing page":    "Finish landing page",
		"  call   client\tnow  ": "Call client now",
		"review API docs":        "Review api docs",
		"Finish Landing Page":    "Finish landing page",
		"send Report":            "Send report",
		"élan check":             "Élan check",
	}
	for in, want := range tests {
		assert.Equal(t, want, cleanTaskName(in), "input %q", in)
	}
}

func TestCleanAssignee(t *testing.T) {
	tests := map[string]string{
		"":                "",
		"  ":              "",
		"aman":            "Aman",
		"rajeev   KUMAR ": "Rajeev Kumar",
	}
	for in, want := range tests {
		assert.Equal(t, want, cleanAssignee(in), "input %q", in)
	}
}

func TestValidateDate(t *testing.T) {
	dm, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	now := time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-06-20", validateDate(dm, "2025-06-20", now))
	assert.Equal(t, "2024-02-29", validateDate(dm, "2024-02-29", now))
	for _, bad := range []string{"", "2025-02-29", "2025-13-01", "20-06-2025", "2025/06/20", "tomorrow", " 2025-06-20", "2025-06-20 "} {
		assert.Equal(t, "2026-01-01", validateDate(dm, bad, now), "input %q", bad)
	}
}

func TestValidateTime(t *testing.T) {
	for _, ok := range []string{"00:00", "09:15", "23:59"} {
		assert.Equal(t, ok, validateTime(ok))
	}
	for _, bad := range []string{"", "24:00", "12:60", "5pm", "9:15", "09:15:00", " 09:15", "09:15 "} {
		assert.Equal(t, DefaultDueTime, validateTime(bad), "input %q", bad)
	}
}

func TestValidatePriority(t *testing.T) {
	for _, p := range []string{"P1", "P2", "P3", "P4"} {
		assert.Equal(t, model.Priority(p), validatePriority(p))
	}
	for _, bad := range []string{"", "p1", "P0", "P5", "high", " P2", "P2 "} {
		assert.Equal(t, model.PriorityP3, validatePriority(bad), "input %q", bad)
	}
}

func TestBuildPrompt(t *testing.T) {
	dm, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	ref := time.Date(2025, time.June, 13, 0, 0, 0, 0, time.UTC)

	prompt := BuildPrompt(dm, `Ping "ops" team`, ref)

	assert.Contains(t, prompt, "Today's date is 2025-06-13 for reference")
	assert.Contains(t, prompt, `"dueDate": "2025-06-20"`)
	assert.Contains(t, prompt, `"dueDate": "2025-06-14"`)
	assert.Contains(t, prompt, `"dueDate": "2025-06-16"`)
	assert.Contains(t, prompt, `"dueDate": "2025-06-18"`)
	assert.True(t, strings.HasSuffix(prompt, "Now parse this text:\n\"Ping \"ops\" team\"\n"))
	assert.Equal(t, prompt, BuildPrompt(dm, `Ping "ops" team`, ref), "deterministic")

	later := BuildPrompt(dm, "x", time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, later, `"dueDate": "2026-06-20"`)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcde...", truncate("abcdefghij", 5))
	assert.Equal(t, "a...", truncate("aé", 2))
}

type stubCompleter struct {
	tasks []parser.RawTask
	err   error
}

func (s stubCompleter) Complete(ctx context.Context, prompt string) ([]parser.RawTask, error) {
	return s.tasks, s.err
}

func (s stubCompleter) Probe(ctx context.Context) bool { return s.err == nil }

func TestMetrics(t *testing.T) {
	dm, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	clock := datemath.FixedClock(time.Date(2025, time.June, 13, 9, 0, 0, 0, time.UTC))

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	ok := New(log.NewNop(), stubCompleter{tasks: []parser.RawTask{
		{TaskName: "a", Assignee: "b", DueDate: "2025-06-20", DueTime: "10:00", Priority: "P1"},
		{TaskName: "", Assignee: "b", DueDate: "2025-06-20", DueTime: "10:00", Priority: "P1"},
	}}, dm, clock, clock.Now(), m)
	failing := New(log.NewNop(), stubCompleter{err: parser.ErrInvalidResponse}, dm, clock, clock.Now(), m)

	ctx := context.Background()
	_, err = ok.Parse(ctx, parser.ParseInput{Text: "x"})
	require.NoError(t, err)
	_, err = failing.Parse(ctx, parser.ParseInput{Text: "buy milk"})
	require.NoError(t, err)
	_, err = ok.Parse(ctx, parser.ParseInput{Text: " "})
	require.ErrorIs(t, err, parser.ErrInvalidInput)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.parseTotal.WithLabelValues("primary")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.parseTotal.WithLabelValues("fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.parseTotal.WithLabelValues("rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.tasksReturned.WithLabelValues("primary")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.tasksReturned.WithLabelValues("fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.tasksDropped))
	assert.Equal(t, 2, testutil.CollectAndCount(m.completionDuration))
}
