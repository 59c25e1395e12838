package middleware

import (
	"github.com/deppfellow/menu-api/internal/validation"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"

	// requestIDTag bounds what a client may pass as its own correlation id
	// before it ends up in every log line of the request.
	requestIDTag = "printascii,max=128"
)

// RequestID tags every request with a correlation id.
//
// A well-formed incoming X-Request-ID is kept so callers can trace a
// request across services. A missing or unusable one is replaced by a
// fresh UUID. The id is echoed back on the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" || !validation.Var(requestID, requestIDTag) {
				requestID = uuid.NewString()
			}

			c.Set(RequestIDKey, requestID)
			c.Response().Header().Set(RequestIDHeader, requestID)

			return next(c)
		}
	}
}

// GetRequestID returns the id assigned by RequestID, or "".
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(RequestIDKey).(string)
	return id
}
