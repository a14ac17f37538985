package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/playforge/rewards-backend/internal/config"
	"github.com/playforge/rewards-backend/internal/handlers"
	"github.com/playforge/rewards-backend/internal/middleware"
	"github.com/playforge/rewards-backend/pkg/tokens"
)

// HandlerDependencies groups the handlers the router wires up
type HandlerDependencies struct {
	AuthHandler   *handlers.AuthHandler
	RewardHandler *handlers.RewardHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, tokenSvc *tokens.Service, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.TimeoutMiddleware(time.Duration(cfg.Server.RequestTimeout) * time.Second))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth routes (public)
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/register", deps.AuthHandler.Register)
		auth.POST("/login", deps.AuthHandler.Login)
	}

	authRequired := middleware.TokenAuthMiddleware(tokenSvc)

	// Reward endpoints, kept at the root paths the clients call
	rewards := router.Group("/")
	rewards.Use(authRequired)
	{
		rewards.POST("/applyAdReward", deps.RewardHandler.ApplyAdReward)
		rewards.POST("/awardGamePoints", deps.RewardHandler.AwardGamePoints)
	}

	// Player read routes
	players := router.Group("/api/v1/players")
	players.Use(authRequired)
	{
		players.GET("/:id/balance", deps.RewardHandler.GetBalance)
		players.GET("/:id/activities", deps.RewardHandler.GetActivities)
	}

	return router
}
