package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobquest-utils/internal/api/routes"
	"jobquest-utils/internal/chat"
	"jobquest-utils/internal/config"
	"jobquest-utils/internal/llm"
	"jobquest-utils/internal/logging"
	"jobquest-utils/internal/resume"
	"jobquest-utils/internal/search"
	"jobquest-utils/internal/search/providers"

	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logging.Info("Starting JobQuest utils")

	// Initialize LLM manager
	llmManager := llm.NewManager(cfg)
	if err := llmManager.Start(); err != nil {
		logging.Fatal("Failed to start LLM manager", map[string]interface{}{"error": err.Error()})
	}

	// Wire the search pipeline
	aggregator := search.NewAggregator(cfg.Chat.BaseLocation,
		providers.NewJSearchClient(cfg),
		providers.NewRemotiveClient(cfg),
	)

	// Conversation sessions and chat orchestration
	sessions := chat.NewSessionStore(cfg.Chat.MaxHistory)
	orchestrator := chat.NewOrchestrator(cfg, aggregator, llmManager, sessions)

	// Resume parsing
	parser := resume.NewParser(cfg)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, orchestrator, parser, llmManager)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logging.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Stop LLM manager
		if err := llmManager.Stop(); err != nil {
			logging.Error("Error stopping LLM manager", map[string]interface{}{"error": err.Error()})
		}

		// Shutdown Echo server
		if err := e.Shutdown(shutdownCtx); err != nil {
			logging.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logging.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logging.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil && err != http.ErrServerClosed {
		logging.Fatal("Server failed to start", map[string]interface{}{"error": err.Error()})
	}
}
