package response

import (
	"github.com/gin-gonic/gin"
)

// MessageResponse is the `{"message": ...}` body used by create/delete
// confirmations and not-found answers.
type MessageResponse struct {
	Message string `json:"message"`
}

// JSON writes any JSON-serializable body.
func JSON(c *gin.Context, statusCode int, body interface{}) {
	c.JSON(statusCode, body)
}

// Message writes a `{"message": ...}` body.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

// Text writes a plain-text body. Validation rejections and store errors are
// surfaced verbatim this way.
func Text(c *gin.Context, statusCode int, message string) {
	c.String(statusCode, message)
}
