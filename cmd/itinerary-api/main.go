// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"itinerary/internal/config"
	httptransport "itinerary/internal/http"
	"itinerary/internal/http/middleware"
	"itinerary/internal/infra"
	"itinerary/internal/modules/backdrop"
	"itinerary/internal/modules/planner"
	"itinerary/internal/modules/ratelimit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	gin.SetMode(cfg.HTTP.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var limiter middleware.Limiter
	if cfg.Redis.Addr != "" {
		redisClient, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Fatal(err)
		}
		defer redisClient.Close()
		limiter = ratelimit.NewService(ratelimit.NewStore(redisClient), cfg.RateLimit)
		log.Printf("rate limit: %d requests per %ds", cfg.RateLimit.Limit, cfg.RateLimit.WindowSeconds)
	} else {
		log.Printf("rate limit: disabled (ITINERARY_REDIS_ADDR not set)")
	}

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Planner:  planner.NewService(),
		Backdrop: backdrop.NewService(nil),
		Limiter:  limiter,

		TrustedProxies: cfg.HTTP.TrustedProxies,
		MaxBodyBytes:   cfg.HTTP.MaxBodyBytes,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
