package model

// Priority is an ordinal urgency level, P1 highest.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
	PriorityP4 Priority = "P4"

	DefaultPriority = PriorityP3
)

// Valid reports whether p is one of P1..P4.
func (p Priority) Valid() bool {
	switch p {
	case PriorityP1, PriorityP2, PriorityP3, PriorityP4:
		return true
	}
	return false
}

// Task is a structured task record extracted from free-form text.
type Task struct {
	TaskName string   `json:"taskName"`
	Assignee string   `json:"assignee"`
	DueDate  string   `json:"dueDate"` // YYYY-MM-DD
	DueTime  string   `json:"dueTime"` // HH:MM, 24-hour
	Priority Priority `json:"priority"`
}
