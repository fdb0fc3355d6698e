package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/viterhq/server/api/rest/auth"
	"github.com/viterhq/server/api/rest/health"
	"github.com/viterhq/server/api/rest/invites"
	"github.com/viterhq/server/api/rest/notifications"
	"github.com/viterhq/server/api/rest/problems"
	"github.com/viterhq/server/api/rest/webhooks"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(corsMiddleware())
	router.GET("/health", health.Handler)

	// invite endpoints are a brute-force target, keep them throttled
	rateLimit := mgin.NewMiddleware(limiter.New(memory.NewStore(), limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  30,
	}))

	// provider-facing and client-contract paths live at the root
	root := router.Group("")

	{
		invites.RegisterRoutes(root, server.services.InviteCodec, server.services.Mailer, server.config.BaseURL, rateLimit)
		webhooks.RegisterRoutes(root, server.meetingRepo)
	}

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.userRepo)
		problems.RegisterRoutes(v1, server.services.Embedder, server.problemRepo)
		notifications.RegisterRoutes(v1, server.participantRepo, server.services.Mailer)
	}
}

// allows the web client to call the API from another origin
func corsMiddleware() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}

	return cors.New(corsConfig)
}
