package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/uiforge/uiforge-backend/internal/handlers"
	"github.com/uiforge/uiforge-backend/internal/middleware"
	"github.com/uiforge/uiforge-backend/internal/web"
)

type RouterConfig struct {
	AuthHandler    *handlers.AuthHandler
	AgentsHandler  *handlers.AgentsHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	router.StaticFS("/app", http.FS(web.Static()))
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/app/")
	})

	api := router.Group("/api")
	auth := api.Group("/auth")
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	protected.POST("/auth/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/auth/logout", cfg.AuthHandler.Logout)
	protected.POST("/agents/generate-component", cfg.AgentsHandler.GenerateComponent)
	protected.GET("/agents/get-generated-components", cfg.AgentsHandler.GetGeneratedComponents)

	return router
}
