package handler

import (
	"github.com/deppfellow/menu-api/internal/server"
	"github.com/deppfellow/menu-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Menu    *MenuHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Menu:    NewMenuHandler(s, services.Menu),
		Health:  NewHealthHandler(s, services.Menu),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
