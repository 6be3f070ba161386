package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TimeoutConfig returns timeout middleware configuration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// SelectiveTimeoutConfig applies defaultTimeout to most endpoints and
// longTimeout to the chat endpoints, which block on the language model
// and both job providers. WebSocket upgrades are exempt entirely.
func SelectiveTimeoutConfig(defaultTimeout, longTimeout time.Duration) echo.MiddlewareFunc {
	isChat := func(c echo.Context) bool {
		return strings.HasPrefix(c.Request().URL.Path, "/api/v1/chat")
	}

	short := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: defaultTimeout,
		Skipper: func(c echo.Context) bool {
			return c.IsWebSocket() || isChat(c)
		},
	})

	long := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: longTimeout,
		Skipper: func(c echo.Context) bool {
			return c.IsWebSocket() || !isChat(c)
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return short(long(next))
	}
}
