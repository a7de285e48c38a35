// README: Access logging middleware.
package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("%s %s %d %s rid=%s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), RequestIDFrom(c))
	}
}
