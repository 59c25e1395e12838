package repository

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/deppfellow/menu-api/internal/model/menu"
)

// ErrMenuItemNotFound is returned when no live item has the requested id.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuRepository is a thread-safe, insertion-ordered menu store.
//
// nextID only moves forward, so ids are never reused after a delete.
// Every method hands out clones; the stored records are never aliased.
type MenuRepository struct {
	mu     sync.RWMutex
	items  []menu.MenuItem
	nextID int
}

// NewMenuRepository creates a store holding seed, in order. The id
// counter starts one past the highest seeded id.
func NewMenuRepository(seed []menu.MenuItem) *MenuRepository {
	items := make([]menu.MenuItem, 0, len(seed))
	nextID := 1
	for _, item := range seed {
		items = append(items, item.Clone())
		if item.ID >= nextID {
			nextID = item.ID + 1
		}
	}

	return &MenuRepository{
		items:  items,
		nextID: nextID,
	}
}

// List returns every item in insertion order.
func (r *MenuRepository) List(_ context.Context) []menu.MenuItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]menu.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		result = append(result, item.Clone())
	}
	return result
}

// Get returns the item with id.
func (r *MenuRepository) Get(_ context.Context, id int) (menu.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return menu.MenuItem{}, ErrMenuItemNotFound
	}
	return r.items[i].Clone(), nil
}

// Create assigns the next id to a validated payload and appends it.
func (r *MenuRepository) Create(_ context.Context, payload *menu.CreateMenuItemPayload) menu.MenuItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := payload.ToMenuItem(r.nextID)
	r.nextID++
	r.items = append(r.items, item)

	return item.Clone()
}

// Update merges the fields present in payload onto the item with id.
func (r *MenuRepository) Update(_ context.Context, id int, payload *menu.UpdateMenuItemPayload) (menu.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return menu.MenuItem{}, ErrMenuItemNotFound
	}

	payload.ApplyTo(&r.items[i])
	return r.items[i].Clone(), nil
}

// Delete removes the item with id and returns it.
func (r *MenuRepository) Delete(_ context.Context, id int) (menu.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return menu.MenuItem{}, ErrMenuItemNotFound
	}

	removed := r.items[i]
	r.items = slices.Delete(r.items, i, i+1)
	return removed, nil
}

// Count returns the number of live items.
func (r *MenuRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// NextID returns the id the next Create will assign.
func (r *MenuRepository) NextID() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nextID
}

// indexOf must be called with r.mu held.
func (r *MenuRepository) indexOf(id int) int {
	return slices.IndexFunc(r.items, func(item menu.MenuItem) bool {
		return item.ID == id
	})
}
