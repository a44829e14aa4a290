package test

import "nl-task-parser/internal/model"

// SampleInput is the fixed text parsed by the diagnostic endpoint.
const SampleInput = "Finish landing page Aman by 11pm 20th June, Call client Rajeev tomorrow 5pm P1"

// Statuses of a diagnostic run.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// SampleOutput mirrors the body of POST /parse.
type SampleOutput struct {
	Tasks []model.Task `json:"tasks"`
}

// SampleParseResponse represents the diagnostic parse result. It is always sent with 200.
type SampleParseResponse struct {
	Input  string        `json:"input"`
	Output *SampleOutput `json:"output,omitempty"`
	Error  string        `json:"error,omitempty"`
	Status string        `json:"status"`
}
