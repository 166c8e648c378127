package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hospital-api/internal/apperrors"
)

// ErrorResponse is the envelope every failed request renders.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Fail writes the error envelope with the given status code.
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{
		Success: false,
		Message: message,
	})
}

// Error maps an error to its HTTP status and writes the error envelope.
// Typed errors carry their own status; anything else is a store failure
// surfaced as a 500 with the raw error text.
func Error(c *gin.Context, err error) {
	if appErr, ok := apperrors.As(err); ok {
		Fail(c, appErr.HTTPStatus(), appErr.Message)
		return
	}
	Fail(c, http.StatusInternalServerError, apperrors.Store(err).Message)
}
