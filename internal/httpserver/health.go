package httpserver

import (
	"nl-task-parser/pkg/response"

	"github.com/gin-gonic/gin"
)

// Service metadata (single source for name and version).
const (
	ServiceMessage = "Natural Language Task Parser API"
	ServiceVersion = "1.0.0"
	DocsPath       = "/swagger/index.html"
)

// root returns static service metadata
// @Summary Service metadata
// @Description Static name, version and docs location
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service metadata"
// @Router / [get]
func (srv HTTPServer) root(c *gin.Context) {
	response.OK(c, gin.H{
		"message": ServiceMessage,
		"version": ServiceVersion,
		"docs":    DocsPath,
	})
}
