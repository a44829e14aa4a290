package http

import (
	"nl-task-parser/internal/parser"
	"nl-task-parser/pkg/log"
)

type handler struct {
	l  log.Logger
	uc parser.UseCase
}

// New creates a new HTTP handler for the parser domain.
func New(l log.Logger, uc parser.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
