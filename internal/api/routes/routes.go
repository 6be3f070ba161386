package routes

import (
	"net/http"
	"time"

	"jobquest-utils/internal/api/handlers"
	"jobquest-utils/internal/api/middleware"
	"jobquest-utils/internal/chat"
	"jobquest-utils/internal/config"
	"jobquest-utils/internal/llm"
	"jobquest-utils/internal/resume"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, orchestrator *chat.Orchestrator, parser *resume.Parser, llmManager *llm.Manager) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Chat endpoints block on the language model and both job
	// providers, so they get a longer budget than everything else
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, cfg.Chat.ReplyTimeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(llmManager))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		v1.POST("/chat", handlers.ChatHandler(orchestrator))

		resumeGroup := v1.Group("/resume")
		{
			resumeGroup.POST("/parse", handlers.ResumeParseHandler(cfg, parser))
		}
	}

	// WebSocket chat transport
	e.GET("/ws/chat", handlers.ChatWebSocketHandler(orchestrator))

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service":   "jobquest-utils",
			"status":    "running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
}
