package middleware

import (
	"github.com/deppfellow/menu-api/internal/server"
	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records Prometheus RED metrics per route.
type MetricsMiddleware struct {
	server *server.Server
}

func NewMetricsMiddleware(s *server.Server) *MetricsMiddleware {
	return &MetricsMiddleware{server: s}
}

// Instrument labels requests by route template (/api/menu/:id), never by
// raw path, so ids do not explode label cardinality.
func (m *MetricsMiddleware) Instrument() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m.server.Metrics == nil {
				return next(c)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			done := m.server.Metrics.RequestStarted(c.Request().Method, route)

			err := next(c)
			done(StatusFromError(c.Response().Status, err))

			return err
		}
	}
}
