package router

import (
	"net/http"

	"github.com/deppfellow/menu-api/internal/handler"
	"github.com/deppfellow/menu-api/internal/model/menu"
	"github.com/labstack/echo/v4"
)

func registerMenuRoutes(r *echo.Group, h *handler.Handlers) {
	m := h.Menu

	items := r.Group("/menu")

	items.GET("", handler.Handle(m.Handler, m.ListMenuItems, http.StatusOK, func() *menu.ListMenuItemsRequest {
		return &menu.ListMenuItemsRequest{}
	}))

	items.GET("/:id", handler.Handle(m.Handler, m.GetMenuItem, http.StatusOK, func() *menu.MenuItemIDRequest {
		return &menu.MenuItemIDRequest{}
	}))

	items.POST("", handler.Handle(m.Handler, m.CreateMenuItem, http.StatusCreated, func() *menu.CreateMenuItemPayload {
		return &menu.CreateMenuItemPayload{}
	}))

	items.PUT("/:id", handler.Handle(m.Handler, m.UpdateMenuItem, http.StatusOK, func() *menu.UpdateMenuItemPayload {
		return &menu.UpdateMenuItemPayload{}
	}))

	items.DELETE("/:id", handler.Handle(m.Handler, m.DeleteMenuItem, http.StatusOK, func() *menu.MenuItemIDRequest {
		return &menu.MenuItemIDRequest{}
	}))
}
