package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/menu-api/internal/middleware"
	"github.com/deppfellow/menu-api/internal/server"
	"github.com/deppfellow/menu-api/internal/service"
	"github.com/labstack/echo/v4"
)

const statusHealthy = "healthy"

// HealthResponse is the /status body.
type HealthResponse struct {
	Status      string       `json:"status"`
	Timestamp   time.Time    `json:"timestamp"`
	Environment string       `json:"environment"`
	Checks      HealthChecks `json:"checks"`
}

type HealthChecks struct {
	MenuStore MenuStoreCheck `json:"menu_store"`
}

type MenuStoreCheck struct {
	Status string `json:"status"`
	Items  int    `json:"items"`
}

// HealthHandler answers liveness probes.
type HealthHandler struct {
	Handler
	menuService *service.MenuService
}

func NewHealthHandler(s *server.Server, menuService *service.MenuService) *HealthHandler {
	return &HealthHandler{
		Handler:     NewHandler(s),
		menuService: menuService,
	}
}

// CheckHealth reports the service as healthy with the live item count.
// The store is in process memory, so there is nothing that can be down
// while the process answers.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	response := HealthResponse{
		Status:      statusHealthy,
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks: HealthChecks{
			MenuStore: MenuStoreCheck{
				Status: statusHealthy,
				Items:  h.menuService.CountMenuItems(),
			},
		},
	}

	middleware.GetLogger(c).Debug().
		Int("items", response.Checks.MenuStore.Items).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
