package http

import (
	"github.com/gin-gonic/gin"

	"pixel-recruiter/pkg/response"
)

// Ask godoc
// @Summary     Ask the recruiting assistant
// @Description Answers a free-text job-search question. Conversational boilerplate is handled locally; everything else is routed to a retrieval strategy and synthesized into an answer.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Question"
// @Success     200 {object} askResp
// @Failure     400 {object} response.Resp "Bad Request - missing or oversized question"
// @Failure     500 {object} response.Resp "Internal Server Error - job store unavailable"
// @Router      /api/v1/chat [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Ask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ask: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newAskResp(output))
}
