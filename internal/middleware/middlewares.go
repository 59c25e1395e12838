package middleware

import (
	"github.com/deppfellow/menu-api/internal/server"
)

// Middlewares groups every middleware component used by the router, so
// they are built once with their shared dependencies.
type Middlewares struct {
	// Global holds CORS, body limit, request logging, recovery, secure
	// headers and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches the request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing provides the (optional) New Relic middleware.
	Tracing *TracingMiddleware

	// Metrics records Prometheus request metrics.
	Metrics *MetricsMiddleware
}

// NewMiddlewares constructs all middleware components using the application container.
//
// When New Relic is not configured the tracing middleware degrades to a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
		Metrics:         NewMetricsMiddleware(s),
	}
}
