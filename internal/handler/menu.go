package handler

import (
	"github.com/deppfellow/menu-api/internal/model/menu"
	"github.com/deppfellow/menu-api/internal/server"
	"github.com/deppfellow/menu-api/internal/service"
	"github.com/labstack/echo/v4"
)

// MenuHandler serves the /api/menu resource.
type MenuHandler struct {
	Handler
	menuService *service.MenuService
}

func NewMenuHandler(s *server.Server, menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{
		Handler:     NewHandler(s),
		menuService: menuService,
	}
}

func (h *MenuHandler) ListMenuItems(c echo.Context, _ *menu.ListMenuItemsRequest) ([]menu.MenuItem, error) {
	return h.menuService.ListMenuItems(c.Request().Context()), nil
}

func (h *MenuHandler) GetMenuItem(c echo.Context, req *menu.MenuItemIDRequest) (*menu.MenuItem, error) {
	return h.menuService.GetMenuItem(c.Request().Context(), req.ID)
}

func (h *MenuHandler) CreateMenuItem(c echo.Context, payload *menu.CreateMenuItemPayload) (*menu.MenuItem, error) {
	return h.menuService.CreateMenuItem(c.Request().Context(), payload), nil
}

func (h *MenuHandler) UpdateMenuItem(c echo.Context, payload *menu.UpdateMenuItemPayload) (*menu.MenuItem, error) {
	return h.menuService.UpdateMenuItem(c.Request().Context(), payload)
}

func (h *MenuHandler) DeleteMenuItem(c echo.Context, req *menu.MenuItemIDRequest) (*menu.MenuItem, error) {
	return h.menuService.DeleteMenuItem(c.Request().Context(), req.ID)
}
