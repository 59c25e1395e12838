package router

import (
	"github.com/deppfellow/menu-api/internal/handler"
	"github.com/deppfellow/menu-api/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the menu
// API: health, metrics and the docs UI with its assets.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/metrics", echo.WrapHandler(s.Metrics.Handler()))

	r.Static("/static", handler.StaticDir)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
	r.GET("/openapi.json", h.OpenAPI.ServeOpenAPIDocument)
}
