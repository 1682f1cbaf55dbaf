package http

import (
	"github.com/gin-gonic/gin"
)

// processAskReq binds and validates the ask request body. Validation
// failures surface before any pipeline stage runs.
func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
