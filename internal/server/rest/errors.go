package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/socialscribe/internal/common"
	"github.com/gin-gonic/gin"
)

// envelope is the body of every failed response.
type envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
	Error   string   `json:"error,omitempty"`
}

const (
	msgInvalidRequest = "Invalid request format"
	msgInvalidID      = "Invalid post ID format"
	msgNotFound       = "Post not found"
	msgGeneration     = "Failed to generate post"
	msgInternal       = "Internal server error"
)

// statusFor maps a service error to the response sent to the caller. Only the
// generation failure carries its underlying message.
func statusFor(err error) (int, envelope) {
	var (
		ve *common.ValidationError
		ge *common.GenerationError
	)

	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, envelope{Message: ve.Message, Errors: ve.Errors}
	case errors.Is(err, common.ErrorInvalidID):
		return http.StatusBadRequest, envelope{Message: msgInvalidID}
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, envelope{Message: msgNotFound}
	case errors.As(err, &ge):
		return http.StatusInternalServerError, envelope{Message: msgGeneration, Error: ge.Err.Error()}
	default:
		return http.StatusInternalServerError, envelope{Message: msgInternal}
	}
}

func (h *handlers) fail(c *gin.Context, err error) {
	status, body := statusFor(err)

	if status >= http.StatusInternalServerError {
		h.logger.Error(c.Request.Context(), "Request failed", "request_id", c.GetString(requestIDKey), "error", err)
	}

	c.AbortWithStatusJSON(status, body)
}

func abortBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, envelope{Message: message})
}
