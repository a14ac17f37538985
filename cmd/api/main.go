package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/playforge/rewards-backend/api/routes"
	"github.com/playforge/rewards-backend/internal/config"
	"github.com/playforge/rewards-backend/internal/handlers"
	"github.com/playforge/rewards-backend/internal/repositories"
	mongorepo "github.com/playforge/rewards-backend/internal/repositories/mongodb"
	"github.com/playforge/rewards-backend/internal/services"
	"github.com/playforge/rewards-backend/pkg/mongodb"
	"github.com/playforge/rewards-backend/pkg/tokens"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load(config.GetEnv("CONFIG_PATH", "."))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT.Secret is not configured")
	}

	// Connect to MongoDB using the pkg helper
	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Initialize repositories, assigning to interface types
	var balanceRepo repositories.BalanceRepository = mongorepo.NewBalanceRepository(db)
	var activityRepo repositories.ActivityRepository = mongorepo.NewActivityRepository(db)
	var accountRepo repositories.AccountRepository = mongorepo.NewAccountRepository(db)

	// Initialize services
	tokenSvc := tokens.NewService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiresIn)*time.Second)
	rewardService := services.NewRewardService(balanceRepo, activityRepo, cfg.Rewards)
	authService := services.NewAuthService(accountRepo, tokenSvc)

	// Initialize handlers
	handlerDeps := routes.HandlerDependencies{
		AuthHandler:   handlers.NewAuthHandler(authService, tokenSvc),
		RewardHandler: handlers.NewRewardHandler(rewardService, cfg.Rewards),
	}

	router := routes.SetupRouter(cfg, tokenSvc, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	// Run server in a goroutine so that it doesn't block
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
