package http

import (
	"nl-task-parser/internal/parser"
	"nl-task-parser/pkg/response"
)

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text" binding:"required,min=1,max=2000" example:"Call client Rajeev tomorrow 5pm P1"`
}

func (r parseReq) toInput() parser.ParseInput {
	return parser.ParseInput{Text: r.Text}
}

// --- Response DTOs ---

type taskItem struct {
	TaskName string `json:"taskName" example:"Call client"`
	Assignee string `json:"assignee" example:"Rajeev"`
	DueDate  string `json:"dueDate" example:"2025-06-14"`
	DueTime  string `json:"dueTime" example:"17:00"`
	Priority string `json:"priority" example:"P1"`
}

type parseResp struct {
	Tasks []taskItem `json:"tasks"`
}

// newParseResp renders both parse paths identically; Source is not exposed.
func (h *handler) newParseResp(o parser.ParseOutput) parseResp {
	items := make([]taskItem, 0, len(o.Tasks))
	for _, t := range o.Tasks {
		items = append(items, taskItem{
			TaskName: t.TaskName,
			Assignee: t.Assignee,
			DueDate:  t.DueDate,
			DueTime:  t.DueTime,
			Priority: string(t.Priority),
		})
	}
	return parseResp{Tasks: items}
}

// ---

type healthResp struct {
	Status            string            `json:"status" example:"healthy"`
	OpenAIConnection  bool              `json:"openai_connection"`
	FallbackAvailable bool              `json:"fallback_available"`
	Timestamp         response.DateTime `json:"timestamp" swaggertype:"string" example:"2025-06-13T10:30:00Z"`
}

func (h *handler) newHealthResp(o parser.HealthOutput) healthResp {
	return healthResp{
		Status:            o.Status,
		OpenAIConnection:  o.OpenAIConnection,
		FallbackAvailable: o.FallbackAvailable,
		Timestamp:         response.DateTime(o.Timestamp),
	}
}
