package completion_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nl-task-parser/internal/parser"
	"nl-task-parser/internal/parser/completion"
	"nl-task-parser/pkg/llmprovider"
	"nl-task-parser/pkg/log"
)

type mockProvider struct {
	reply    string
	err      error
	requests []*llmprovider.Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: []llmprovider.Part{{Text: m.reply}}},
		ProviderName: "mock",
		ModelName:    "mock-model",
		Usage:        &llmprovider.Usage{},
	}, nil
}

func (m *mockProvider) Name() string  { return "mock" }
func (m *mockProvider) Model() string { return "mock-model" }

const workedExample = `{
  "tasks": [
    {"taskName": "Finish landing page", "assignee": "Aman", "dueDate": "2025-06-20", "dueTime": "23:00", "priority": "P3"},
    {"taskName": "Call client", "assignee": "Rajeev", "dueDate": "2025-06-14", "dueTime": "17:00", "priority": "P3"}
  ]
}`

func newClient(p llmprovider.Provider) *completion.Client {
	return completion.New(log.NewNop(), p, completion.Config{MaxTokens: 1000, Temperature: 0.1, JSONMode: true})
}

func TestComplete_Success(t *testing.T) {
	p := &mockProvider{reply: "\n  " + workedExample + "  \n"}
	c := newClient(p)

	tasks, err := c.Complete(context.Background(), "the prompt")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, parser.RawTask{
		TaskName: "Finish landing page",
		Assignee: "Aman",
		DueDate:  "2025-06-20",
		DueTime:  "23:00",
		Priority: "P3",
	}, tasks[0])
	assert.Equal(t, "Rajeev", tasks[1].Assignee)

	require.Len(t, p.requests, 1)
	req := p.requests[0]
	assert.Equal(t, completion.SystemPrompt, req.SystemInstruction.Parts[0].Text)
	assert.Equal(t, "the prompt", req.Messages[0].Parts[0].Text)
	assert.Equal(t, llmprovider.RoleUser, req.Messages[0].Role)
	assert.Equal(t, 1000, req.MaxTokens)
	assert.InDelta(t, 0.1, req.Temperature, 1e-9)
	assert.True(t, req.JSONMode)
}

func TestComplete_ExtractsEmbeddedObject(t *testing.T) {
	replies := map[string]string{
		"Prose around":   "Sure! Here are your tasks:\n" + workedExample + "\nLet me know if you need more.",
		"Markdown fence": "```json\n" + workedExample + "\n```",
	}

	for name, reply := range replies {
		t.Run(name, func(t *testing.T) {
			tasks, err := newClient(&mockProvider{reply: reply}).Complete(context.Background(), "p")
			require.NoError(t, err)
			assert.Len(t, tasks, 2)
		})
	}
}

func TestComplete_InvalidResponse(t *testing.T) {
	replies := map[string]string{
		"No braces":       "I could not find any tasks.",
		"Broken object":   "here {not json at all}",
		"Empty reply":     "   ",
		"Two objects":     `{"tasks": []} and {"tasks": []}`,
		"Truncated reply": `{"tasks": [{"taskName": "x"`,
	}

	for name, reply := range replies {
		t.Run(name, func(t *testing.T) {
			_, err := newClient(&mockProvider{reply: reply}).Complete(context.Background(), "p")
			require.Error(t, err)
			assert.ErrorIs(t, err, parser.ErrInvalidResponse)
		})
	}
}

func TestComplete_SchemaViolations(t *testing.T) {
	tests := []struct {
		name      string
		reply     string
		wantIndex int
		wantField string
	}{
		{
			name:      "Missing tasks",
			reply:     `{"items": []}`,
			wantIndex: -1,
			wantField: "tasks",
		},
		{
			name:      "Tasks not a list",
			reply:     `{"tasks": {"taskName": "x"}}`,
			wantIndex: -1,
			wantField: "tasks",
		},
		{
			name:      "Task not an object",
			reply:     `{"tasks": ["Call client"]}`,
			wantIndex: 0,
			wantField: "task",
		},
		{
			name:      "Missing field in second task",
			reply:     `{"tasks": [{"taskName": "a", "assignee": "b", "dueDate": "2025-06-20", "dueTime": "10:00", "priority": "P1"}, {"taskName": "a", "assignee": "b", "dueDate": "2025-06-20", "priority": "P1"}]}`,
			wantIndex: 1,
			wantField: "dueTime",
		},
		{
			name:      "Bad date format",
			reply:     `{"tasks": [{"taskName": "a", "assignee": "b", "dueDate": "20th June", "dueTime": "10:00", "priority": "P1"}]}`,
			wantIndex: 0,
			wantField: "dueDate",
		},
		{
			name:      "Bad time format",
			reply:     `{"tasks": [{"taskName": "a", "assignee": "b", "dueDate": "2025-06-20", "dueTime": "5pm", "priority": "P1"}]}`,
			wantIndex: 0,
			wantField: "dueTime",
		},
		{
			name:      "Non-string date",
			reply:     `{"tasks": [{"taskName": "a", "assignee": "b", "dueDate": 20250620, "dueTime": "10:00", "priority": "P1"}]}`,
			wantIndex: 0,
			wantField: "dueDate",
		},
		{
			name:      "Non-string name",
			reply:     `{"tasks": [{"taskName": 42, "assignee": "b", "dueDate": "2025-06-20", "dueTime": "10:00", "priority": "P1"}]}`,
			wantIndex: 0,
			wantField: "taskName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newClient(&mockProvider{reply: tt.reply}).Complete(context.Background(), "p")
			require.Error(t, err)
			assert.ErrorIs(t, err, parser.ErrSchemaViolation)

			var schemaErr *parser.SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, tt.wantIndex, schemaErr.Index)
			assert.Equal(t, tt.wantField, schemaErr.Field)
		})
	}
}

func TestComplete_ShapeOnlyDateAndTime(t *testing.T) {
	// Calendar validity is the normalizer's job; the schema only checks shape.
	reply := `{"tasks": [{"taskName": "a", "assignee": "b", "dueDate": "2025-02-30", "dueTime": "25:99", "priority": "P2"}]}`

	tasks, err := newClient(&mockProvider{reply: reply}).Complete(context.Background(), "p")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "2025-02-30", tasks[0].DueDate)
	assert.Equal(t, "25:99", tasks[0].DueTime)
}

func TestComplete_PriorityCoercion(t *testing.T) {
	for _, priority := range []string{`"P5"`, `"high"`, `""`, `null`, `1`, `"p1"`} {
		t.Run(priority, func(t *testing.T) {
			reply := `{"tasks": [{"taskName": "a", "assignee": "b", "dueDate": "2025-06-20", "dueTime": "10:00", "priority": ` + priority + `}]}`

			tasks, err := newClient(&mockProvider{reply: reply}).Complete(context.Background(), "p")
			require.NoError(t, err)
			require.Len(t, tasks, 1)
			assert.Equal(t, "P3", tasks[0].Priority)
		})
	}
}

func TestComplete_NullNameKeepsTask(t *testing.T) {
	reply := `{"tasks": [{"taskName": null, "assignee": "b", "dueDate": "2025-06-20", "dueTime": "10:00", "priority": "P4"}]}`

	tasks, err := newClient(&mockProvider{reply: reply}).Complete(context.Background(), "p")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "", tasks[0].TaskName)
	assert.Equal(t, "P4", tasks[0].Priority)
}

func TestComplete_EmptyTaskList(t *testing.T) {
	tasks, err := newClient(&mockProvider{reply: `{"tasks": []}`}).Complete(context.Background(), "p")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestComplete_UpstreamError(t *testing.T) {
	cause := &llmprovider.ProviderError{Provider: "mock", StatusCode: 429, Kind: llmprovider.ErrProviderRateLimited, Err: errors.New("slow down")}
	p := &mockProvider{err: cause}

	_, err := newClient(p).Complete(context.Background(), "p")
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrUpstream)
	assert.ErrorIs(t, err, llmprovider.ErrProviderRateLimited)
	assert.Len(t, p.requests, 1, "upstream failures are never retried")
}

func TestProbe(t *testing.T) {
	t.Run("Reachable", func(t *testing.T) {
		p := &mockProvider{reply: "ok"}
		assert.True(t, newClient(p).Probe(context.Background()))

		require.Len(t, p.requests, 1)
		assert.Equal(t, llmprovider.ProbeMaxTokens, p.requests[0].MaxTokens)
		assert.Equal(t, completion.ProbePrompt, p.requests[0].Messages[0].Parts[0].Text)
		assert.False(t, p.requests[0].JSONMode)
	})

	t.Run("Unreachable", func(t *testing.T) {
		p := &mockProvider{err: errors.New("dial tcp: connection refused")}
		assert.False(t, newClient(p).Probe(context.Background()))
	})
}
