package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with data as the whole body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends 400 with the error's message.
func Error(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrResp{
		Error:   ErrorBadRequest,
		Message: err.Error(),
	})
}

// InternalError sends 500 with a fixed message. err is never exposed.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = DefaultErrorMessage
	}
	c.JSON(http.StatusInternalServerError, ErrResp{
		Error:   ErrorInternal,
		Message: message,
	})
}

// ServiceUnavailable sends 503 with message.
func ServiceUnavailable(c *gin.Context, message string) {
	c.JSON(http.StatusServiceUnavailable, ErrResp{
		Error:   ErrorServiceUnavailable,
		Message: message,
	})
}
