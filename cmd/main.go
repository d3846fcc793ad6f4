package main

import (
	"fmt"
	"os"
	"time"

	"github.com/uiforge/uiforge-backend/internal/db"
	"github.com/uiforge/uiforge-backend/internal/handlers"
	"github.com/uiforge/uiforge-backend/internal/logger"
	"github.com/uiforge/uiforge-backend/internal/middleware"
	"github.com/uiforge/uiforge-backend/internal/repos"
	"github.com/uiforge/uiforge-backend/internal/server"
	"github.com/uiforge/uiforge-backend/internal/services"
	"github.com/uiforge/uiforge-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	generationRepo := repos.NewGenerationRepo(thePG, log)

	// Services
	log.Info("Setting up services from main...")
	openaiClient, err := services.NewOpenAIClient(log)
	if err != nil {
		log.Error("Could not init OpenAIClient", "error", err)
		os.Exit(1)
	}
	searchClient, err := services.NewSearchClient(log)
	if err != nil {
		log.Warn("Search client unavailable, pipeline runs without web search", "error", err)
		searchClient = nil
	}
	teamRunner := services.NewTeamRunner(openaiClient, searchClient, log)
	generationService := services.NewGenerationService(generationRepo, teamRunner, log)
	authService := services.NewAuthService(
		thePG,
		log,
		userRepo,
		userTokenRepo,
		jwtSecretKey,
		time.Duration(accessTokenTTL)*time.Second,
		time.Duration(refreshTokenTTL)*time.Second,
	)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	agentsHandler := handlers.NewAgentsHandler(generationService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:    authHandler,
		AgentsHandler:  agentsHandler,
		AuthMiddleware: authMiddleware,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
