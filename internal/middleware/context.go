package middleware

import (
	"github.com/deppfellow/menu-api/internal/logger"
	"github.com/deppfellow/menu-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerKey holds the request-scoped *zerolog.Logger in the Echo context.
const LoggerKey = "logger"

// ContextEnhancer derives a child of the server logger for each request.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext attaches the request logger. Every line it writes
// carries request_id, method, route, ip and, on item routes, the raw
// menu_item_id, plus New Relic trace ids while a transaction is open.
//
// The logger is reachable two ways: GetLogger(c) for Echo code and
// zerolog.Ctx(ctx) for the service layer, which only sees a context.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			fields := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP())

			if id := c.Param("id"); id != "" {
				fields = fields.Str("menu_item_id", id)
			}

			requestLogger := fields.Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				requestLogger = logger.WithTraceContext(requestLogger, txn)
			}

			c.Set(LoggerKey, &requestLogger)
			c.SetRequest(c.Request().WithContext(requestLogger.WithContext(c.Request().Context())))

			return next(c)
		}
	}
}

// GetLogger returns the request logger, or a no-op logger outside
// EnhanceContext.
func GetLogger(c echo.Context) *zerolog.Logger {
	if l, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return l
	}

	nop := zerolog.Nop()
	return &nop
}
