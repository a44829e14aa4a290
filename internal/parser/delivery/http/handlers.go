package http

import (
	"github.com/gin-gonic/gin"

	"nl-task-parser/internal/parser"
	"nl-task-parser/pkg/response"
)

// Parse godoc
// @Summary     Parse natural language into tasks
// @Description Extracts task name, assignee, due date/time and priority from free-form text.
// @Description Falls back to pattern matching when the language model is unavailable.
// @Tags        Parser
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Text to parse"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.ErrResp "Bad Request"
// @Failure     500  {object} response.ErrResp "Internal Server Error"
// @Router      /parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.parser.delivery.http.Parse: invalid request: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		if isClientError(err) {
			response.Error(c, err)
			return
		}
		h.l.Errorf(ctx, "internal.parser.delivery.http.Parse: uc.Parse: %v", err)
		response.InternalError(c, errMsgParseFailed)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Health godoc
// @Summary     Service health
// @Description Probes the language model. "degraded" means requests are served by the fallback parser.
// @Tags        Health
// @Produce     json
// @Success     200 {object} healthResp
// @Failure     503 {object} response.ErrResp "Service unhealthy"
// @Router      /health [GET]
func (h *handler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	output := h.uc.Health(ctx)
	if output.Status == parser.StatusUnhealthy {
		h.l.Errorf(ctx, "internal.parser.delivery.http.Health: %s", output.Error)
		response.ServiceUnavailable(c, errMsgUnhealthy)
		return
	}

	response.OK(c, h.newHealthResp(output))
}
