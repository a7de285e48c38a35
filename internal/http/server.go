// README: API gateway; holds module services and builds the gin engine.
package http

import (
	"itinerary/internal/http/middleware"
	"itinerary/internal/modules/backdrop"
	"itinerary/internal/modules/planner"
)

type ServerDeps struct {
	Planner  *planner.Service
	Backdrop *backdrop.Service
	// Limiter is optional; nil disables rate limiting.
	Limiter middleware.Limiter
	// TrustedProxies may forward X-Forwarded-For; empty trusts no one.
	TrustedProxies []string
	// MaxBodyBytes caps /api request bodies; zero leaves them uncapped.
	MaxBodyBytes int64
}

type Server struct {
	planner  *planner.Service
	backdrop *backdrop.Service
	limiter  middleware.Limiter

	trustedProxies []string
	maxBodyBytes   int64
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		planner:  deps.Planner,
		backdrop: deps.Backdrop,
		limiter:  deps.Limiter,

		trustedProxies: deps.TrustedProxies,
		maxBodyBytes:   deps.MaxBodyBytes,
	}
}
