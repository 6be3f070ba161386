package handlers

import (
	"net/http"
	"time"

	"jobquest-utils/internal/chat"
	"jobquest-utils/internal/logging"
	"jobquest-utils/pkg/models"
	"jobquest-utils/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"golang.org/x/net/websocket"
)

var validate = validator.New()

// ChatHandler handles one chat exchange over HTTP
func ChatHandler(orchestrator *chat.Orchestrator) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		var req models.ChatRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind chat request", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Chat request validation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		reply, conversationID := orchestrator.HandleMessage(c.Request().Context(), req.ConversationID, req.Message)

		logger.Info("Chat request processed", map[string]interface{}{
			"conversation_id": conversationID,
			"processing_time": time.Since(startTime).String(),
		})

		return c.JSON(http.StatusOK, models.ChatResponse{
			Response:       reply,
			ConversationID: conversationID,
		})
	}
}

// ChatWebSocketHandler runs a chat conversation over a WebSocket.
// Each inbound frame is a ChatRequest and each outbound frame a
// ChatResponse; the conversation ID assigned on the first exchange is
// reused for the rest of the connection.
func ChatWebSocketHandler(orchestrator *chat.Orchestrator) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		websocket.Handler(func(ws *websocket.Conn) {
			defer ws.Close()

			conversationID := c.QueryParam("conversation_id")
			logger.Info("WebSocket chat connected", map[string]interface{}{
				"conversation_id": conversationID,
			})

			for {
				var req models.ChatRequest
				if err := websocket.JSON.Receive(ws, &req); err != nil {
					logger.Debug("WebSocket chat disconnected", map[string]interface{}{
						"error": err.Error(),
					})
					return
				}

				if req.Message == "" {
					continue
				}

				if req.ConversationID != "" {
					conversationID = req.ConversationID
				}

				reply, id := orchestrator.HandleMessage(c.Request().Context(), conversationID, req.Message)
				conversationID = id

				if err := websocket.JSON.Send(ws, models.ChatResponse{
					Response:       reply,
					ConversationID: conversationID,
				}); err != nil {
					logger.Debug("WebSocket send failed", map[string]interface{}{
						"error": err.Error(),
					})
					return
				}
			}
		}).ServeHTTP(c.Response(), c.Request())

		return nil
	}
}
