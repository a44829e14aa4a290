package completion

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"nl-task-parser/internal/model"
	"nl-task-parser/internal/parser"
	"nl-task-parser/pkg/datemath"
)

// jsonObjectSpan matches from the first '{' to the last '}', across lines.
var jsonObjectSpan = regexp.MustCompile(`(?s)\{.*\}`)

// decodeDocument parses content as a JSON object, falling back to the first
// brace-delimited span when the model wrapped the object in prose.
func decodeDocument(content string) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(content), &doc); err == nil {
		return doc, nil
	}

	span := jsonObjectSpan.FindString(content)
	if span == "" {
		return nil, fmt.Errorf("%w: no JSON object in reply", parser.ErrInvalidResponse)
	}

	doc = nil
	if err := json.Unmarshal([]byte(span), &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", parser.ErrInvalidResponse, err)
	}
	return doc, nil
}

// validateDocument checks the task schema. Unknown priorities are coerced to
// the default; every other violation fails the whole document.
func (c *Client) validateDocument(ctx context.Context, doc map[string]any) ([]parser.RawTask, error) {
	rawTasks, ok := doc[FieldTasks]
	if !ok {
		return nil, &parser.SchemaError{Index: -1, Field: FieldTasks, Reason: "missing field"}
	}
	list, ok := rawTasks.([]any)
	if !ok {
		return nil, &parser.SchemaError{Index: -1, Field: FieldTasks, Reason: "must be an array"}
	}

	tasks := make([]parser.RawTask, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &parser.SchemaError{Index: i, Field: "task", Reason: "must be an object"}
		}

		for _, field := range requiredFields {
			if _, ok := obj[field]; !ok {
				return nil, &parser.SchemaError{Index: i, Field: field, Reason: "missing required field"}
			}
		}

		name, err := nullableString(i, FieldTaskName, obj[FieldTaskName])
		if err != nil {
			return nil, err
		}
		assignee, err := nullableString(i, FieldAssignee, obj[FieldAssignee])
		if err != nil {
			return nil, err
		}

		priority, _ := obj[FieldPriority].(string)
		if !model.Priority(priority).Valid() {
			c.l.Warnf(ctx, "internal.parser.completion.validateDocument: invalid priority %v, defaulting to %s",
				obj[FieldPriority], model.DefaultPriority)
			priority = string(model.DefaultPriority)
		}

		dueDate, ok := obj[FieldDueDate].(string)
		if !ok || !datemath.HasDateShape(dueDate) {
			return nil, &parser.SchemaError{Index: i, Field: FieldDueDate, Reason: fmt.Sprintf("invalid date format: %v", obj[FieldDueDate])}
		}

		dueTime, ok := obj[FieldDueTime].(string)
		if !ok || !datemath.HasTimeShape(dueTime) {
			return nil, &parser.SchemaError{Index: i, Field: FieldDueTime, Reason: fmt.Sprintf("invalid time format: %v", obj[FieldDueTime])}
		}

		tasks = append(tasks, parser.RawTask{
			TaskName: name,
			Assignee: assignee,
			DueDate:  dueDate,
			DueTime:  dueTime,
			Priority: priority,
		})
	}

	return tasks, nil
}

// nullableString accepts a string or JSON null (as "").
func nullableString(index int, field string, v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	default:
		return "", &parser.SchemaError{Index: index, Field: field, Reason: fmt.Sprintf("must be a string, got %T", v)}
	}
}
