package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// ServiceUnavailable sends 503 with the given reason.
func ServiceUnavailable(c *gin.Context, reason string) {
	c.JSON(http.StatusServiceUnavailable, Resp{
		ErrorCode: http.StatusServiceUnavailable,
		Message:   reason,
	})
}

// Fail aborts with the bare {"error": msg} body.
func Fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: msg})
}

// Ack sends 200 with {"status": status, "message": msg}.
func Ack(c *gin.Context, status, msg string) {
	c.JSON(http.StatusOK, StatusBody{Status: status, Message: msg})
}
