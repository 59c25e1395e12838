// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/deppfellow/menu-api/internal/handler"
	"github.com/deppfellow/menu-api/internal/middleware"
	"github.com/deppfellow/menu-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with the global middleware chain,
// the error handler and every route.
//
// Order matters: the request id must exist before the context logger is
// built, the context logger before anything that logs, and Recover sits
// innermost so a panic still passes through logging and metrics as a 500.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Metrics.Instrument(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.BodyLimit(),
		middlewares.Global.RequestTrace(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, s, h)

	api := router.Group("/api")
	registerMenuRoutes(api, h)

	return router
}
