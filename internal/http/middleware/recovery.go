// README: Recovery middleware; turns handler panics into a 500 JSON error.
package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic serving %s %s rid=%s: %v", c.Request.Method, c.Request.URL.Path, RequestIDFrom(c), r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
		}()
		c.Next()
	}
}
