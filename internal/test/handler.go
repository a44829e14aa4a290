package test

import (
	"fmt"
	"net/http"

	"nl-task-parser/internal/model"
	"nl-task-parser/internal/parser"
	pkgLog "nl-task-parser/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l  pkgLog.Logger
	uc parser.UseCase
}

// HandleSampleParse parses a fixed sample input
// @Summary Test parse with sample input
// @Description Runs the parse pipeline on a built-in sample. Always responds 200; failures are reported inline.
// @Tags test
// @Produce json
// @Success 200 {object} SampleParseResponse
// @Router /test [get]
func (h *handler) HandleSampleParse(c *gin.Context) {
	ctx := c.Request.Context()

	resp := h.runSample(c)
	if resp.Status == StatusError {
		h.l.Errorf(ctx, "internal.test.HandleSampleParse: %s", resp.Error)
	} else {
		h.l.Infof(ctx, "internal.test.HandleSampleParse: parsed %d tasks", len(resp.Output.Tasks))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) runSample(c *gin.Context) (resp SampleParseResponse) {
	resp.Input = SampleInput

	defer func() {
		if r := recover(); r != nil {
			resp.Output = nil
			resp.Error = fmt.Sprint(r)
			resp.Status = StatusError
		}
	}()

	output, err := h.uc.Parse(c.Request.Context(), parser.ParseInput{Text: SampleInput})
	if err != nil {
		resp.Error = err.Error()
		resp.Status = StatusError
		return resp
	}

	tasks := output.Tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	resp.Output = &SampleOutput{Tasks: tasks}
	resp.Status = StatusSuccess
	return resp
}
