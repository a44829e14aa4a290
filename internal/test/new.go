package test

import (
	"nl-task-parser/internal/parser"
	pkgLog "nl-task-parser/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleSampleParse(c *gin.Context)
}

// New creates a new test handler
func New(l pkgLog.Logger, uc parser.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
