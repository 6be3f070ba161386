package middleware

import (
	"net/http"
	"strings"
	"time"

	"jobquest-utils/pkg/models"
	"jobquest-utils/pkg/utils"

	"github.com/labstack/echo/v4"
)

// maxJSONBodySize caps JSON request bodies. Resume uploads are
// multipart and have their own configured limit in the handler.
const maxJSONBodySize = 1024 * 1024

// RequestValidation middleware validates incoming requests
func RequestValidation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Add request ID to context
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost && !isMultipart(c) {
				if c.Request().ContentLength > maxJSONBodySize {
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error:     "request_too_large",
						Message:   "Request body too large",
						RequestID: requestID,
						Timestamp: time.Now(),
					})
				}
			}

			return next(c)
		}
	}
}

func isMultipart(c echo.Context) bool {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(contentType, "multipart/form-data")
}
