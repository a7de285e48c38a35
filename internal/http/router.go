// README: HTTP router registration.
package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"itinerary/internal/http/handlers"
	"itinerary/internal/http/middleware"
)

func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	// ClientIP keys the rate limiter, so X-Forwarded-For is only honored
	// from configured proxies.
	if err := r.SetTrustedProxies(s.trustedProxies); err != nil {
		log.Printf("trusted proxies %v: %v (trusting none)", s.trustedProxies, err)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(middleware.RequestID(), middleware.Logging(), middleware.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")
	if s.maxBodyBytes > 0 {
		api.Use(middleware.BodyLimit(s.maxBodyBytes))
	}
	if s.limiter != nil {
		api.Use(middleware.RateLimit(s.limiter))
	}

	optionsHandler := handlers.NewOptionsHandler()
	api.GET("/options", optionsHandler.List)

	itineraryHandler := handlers.NewItineraryHandler(s.planner)
	api.POST("/itineraries", itineraryHandler.Create)

	backdropHandler := handlers.NewBackdropHandler(s.backdrop)
	api.GET("/backdrop", backdropHandler.Random)

	return r
}
