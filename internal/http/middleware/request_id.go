// README: Request ID middleware; tags each request with a uuid for log correlation.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	maxRequestIDLen = 64
)

// RequestID reuses a caller-supplied X-Request-ID when it is short enough,
// otherwise it generates a new one. The ID is echoed in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestIDFrom returns the ID stored by RequestID, or "" when absent.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
