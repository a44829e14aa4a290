package parser

import (
	"time"

	"nl-task-parser/internal/model"
)

// Source identifies which path produced a parse result.
type Source string

const (
	SourcePrimary  Source = "primary"
	SourceFallback Source = "fallback"
)

// Health statuses.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// ParseInput is the input for Parse.
type ParseInput struct {
	Text string
}

// ParseOutput is the result of Parse. Source is for logs and metrics only.
type ParseOutput struct {
	Tasks  []model.Task
	Source Source
}

// RawTask is a schema-valid task as returned by the completion, before normalization.
type RawTask struct {
	TaskName string
	Assignee string
	DueDate  string
	DueTime  string
	Priority string
}

// HealthOutput reports primary-path liveness.
type HealthOutput struct {
	Status            string
	OpenAIConnection  bool
	FallbackAvailable bool
	Timestamp         time.Time
	Error             string
}
