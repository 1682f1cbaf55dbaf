package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"pixel-recruiter/internal/chat"
	"pixel-recruiter/pkg/response"
)

// mapError translates domain errors into transport responses. Input
// validation is the client's fault; a broken job store is ours.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyQuestion), errors.Is(err, chat.ErrQuestionTooLong):
		response.Error(c, err)
	case errors.Is(err, chat.ErrRetrievalFailed):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
