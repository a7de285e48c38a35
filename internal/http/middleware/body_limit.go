// README: Body limit middleware; caps how many request bytes a handler may read.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimit wraps the request body so reads past n bytes fail with
// *http.MaxBytesError. Handlers map that error to 413.
func BodyLimit(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}
