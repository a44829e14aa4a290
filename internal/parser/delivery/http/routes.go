package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the parser endpoints onto rg.
func RegisterRoutes(rg gin.IRoutes, h *handler) {
	rg.POST("/parse", h.Parse)
	rg.GET("/health", h.Health)
}
