package handlers

import (
	"net/http"
	"time"

	"jobquest-utils/internal/llm"
	"jobquest-utils/internal/logging"
	"jobquest-utils/pkg/models"
	"jobquest-utils/pkg/utils"

	"github.com/labstack/echo/v4"
)

var startTime = time.Now()

const version = "1.0.0" // TODO: Get from build info

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logging.Debug("Health check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler handles readiness probe requests, including a live
// check against the configured LLM provider
func ReadinessHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logging.Debug("Readiness check requested", map[string]interface{}{"request_id": requestID})

		checks := map[string]string{
			"api": "ok",
		}

		status := "ready"
		if err := llmManager.CheckHealth(c.Request().Context()); err != nil {
			// Chat degrades to canned replies without the model, so an
			// unhealthy provider does not make the service unready
			checks["llm"] = err.Error()
		} else {
			checks["llm"] = "ok"
		}

		response := models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		}

		return c.JSON(http.StatusOK, response)
	}
}

// StatusHandler reports basic service status
func StatusHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"service":      "jobquest-utils",
			"status":       "running",
			"version":      version,
			"uptime":       utils.FormatDuration(time.Since(startTime)),
			"llm_provider": llmManager.GetProviderName(),
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}
