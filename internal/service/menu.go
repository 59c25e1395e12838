package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/deppfellow/menu-api/internal/errs"
	"github.com/deppfellow/menu-api/internal/model/menu"
	"github.com/deppfellow/menu-api/internal/repository"
	"github.com/deppfellow/menu-api/internal/server"
	"github.com/rs/zerolog"
)

// MenuService implements the menu operations on top of MenuRepository.
//
// Path ids arrive as strings. Anything that is not a base-10 integer
// cannot match a stored id and is reported as not found.
type MenuService struct {
	server *server.Server
	repo   *repository.MenuRepository
}

func NewMenuService(s *server.Server, repo *repository.MenuRepository) *MenuService {
	return &MenuService{
		server: s,
		repo:   repo,
	}
}

// ListMenuItems returns the full menu in insertion order.
func (ms *MenuService) ListMenuItems(ctx context.Context) []menu.MenuItem {
	return ms.repo.List(ctx)
}

// GetMenuItem returns the item addressed by rawID.
func (ms *MenuService) GetMenuItem(ctx context.Context, rawID string) (*menu.MenuItem, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	item, err := ms.repo.Get(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return &item, nil
}

// CreateMenuItem stores a validated payload under a freshly assigned id.
func (ms *MenuService) CreateMenuItem(ctx context.Context, payload *menu.CreateMenuItemPayload) *menu.MenuItem {
	item := ms.repo.Create(ctx, payload)

	ms.logger(ctx).Info().
		Int("id", item.ID).
		Str("category", string(item.Category)).
		Msg("menu item created")

	return &item
}

// UpdateMenuItem applies the present fields of payload to an existing item.
func (ms *MenuService) UpdateMenuItem(ctx context.Context, payload *menu.UpdateMenuItemPayload) (*menu.MenuItem, error) {
	id, err := parseID(payload.ID)
	if err != nil {
		return nil, err
	}

	item, err := ms.repo.Update(ctx, id, payload)
	if err != nil {
		return nil, mapRepoError(err)
	}

	ms.logger(ctx).Info().
		Int("id", item.ID).
		Msg("menu item updated")

	return &item, nil
}

// DeleteMenuItem removes an item and returns it as it was.
func (ms *MenuService) DeleteMenuItem(ctx context.Context, rawID string) (*menu.MenuItem, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	item, err := ms.repo.Delete(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	ms.logger(ctx).Info().
		Int("id", item.ID).
		Msg("menu item deleted")

	return &item, nil
}

// CountMenuItems reports how many items are live.
func (ms *MenuService) CountMenuItems() int {
	return ms.repo.Count()
}

// logger prefers the request logger carried by ctx and falls back to the
// server logger for calls made outside a request.
func (ms *MenuService) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return ms.server.Logger
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.MenuItemNotFoundError()
	}
	return id, nil
}

func mapRepoError(err error) error {
	if errors.Is(err, repository.ErrMenuItemNotFound) {
		return errs.MenuItemNotFoundError()
	}
	return err
}
