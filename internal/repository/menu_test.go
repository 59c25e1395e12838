package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/deppfellow/menu-api/internal/model/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCreatePayload(t *testing.T, name string) *menu.CreateMenuItemPayload {
	t.Helper()
	body := fmt.Sprintf(`{
		"name": %q,
		"description": "Fresh vegetables wrapped in a spinach tortilla",
		"price": 9.99,
		"category": "entree",
		"ingredients": ["tortilla", "lettuce"]
	}`, name)

	var p menu.CreateMenuItemPayload
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return &p
}

func newUpdatePayload(t *testing.T, body string) *menu.UpdateMenuItemPayload {
	t.Helper()
	var p menu.UpdateMenuItemPayload
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return &p
}

func ids(items []menu.MenuItem) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestNewMenuRepository_Seed(t *testing.T) {
	repo := NewMenuRepository(SeedMenuItems())

	items := repo.List(context.Background())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(items))
	assert.Equal(t, 7, repo.NextID())

	fish := items[5]
	assert.Equal(t, "Fish and Chips", fish.Name)
	require.NotNil(t, fish.Available)
	assert.False(t, *fish.Available)
}

func TestNewMenuRepository_Empty(t *testing.T) {
	repo := NewMenuRepository(nil)
	assert.Equal(t, 0, repo.Count())
	assert.Equal(t, 1, repo.NextID())
}

func TestMenuRepository_CreateAssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(SeedMenuItems())

	first := repo.Create(ctx, newCreatePayload(t, "Veggie Wrap"))
	second := repo.Create(ctx, newCreatePayload(t, "Falafel Wrap"))

	assert.Equal(t, 7, first.ID)
	assert.Equal(t, 8, second.ID)

	items := repo.List(ctx)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, ids(items))
	assert.Equal(t, second, items[len(items)-1])
}

func TestMenuRepository_IDsNotReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(SeedMenuItems())

	created := repo.Create(ctx, newCreatePayload(t, "Veggie Wrap"))
	_, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)

	next := repo.Create(ctx, newCreatePayload(t, "Falafel Wrap"))
	assert.Equal(t, 8, next.ID)
}

func TestMenuRepository_Get(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(SeedMenuItems())

	item, err := repo.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Mozzarella Sticks", item.Name)

	_, err = repo.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestMenuRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(SeedMenuItems())

	before, err := repo.Get(ctx, 1)
	require.NoError(t, err)

	updated, err := repo.Update(ctx, 1, newUpdatePayload(t, `{"price": 15.99}`))
	require.NoError(t, err)

	expected := before.Clone()
	expected.Price = 15.99
	assert.Equal(t, expected, updated)

	stored, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(repo.List(ctx)))
}

func TestMenuRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(SeedMenuItems())

	removed, err := repo.Delete(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Mozzarella Sticks", removed.Name)

	assert.Equal(t, []int{1, 2, 4, 5, 6}, ids(repo.List(ctx)))

	_, err = repo.Get(ctx, 3)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestMenuRepository_NotFoundLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(SeedMenuItems())
	before := repo.List(ctx)

	_, err := repo.Update(ctx, 999, newUpdatePayload(t, `{"name": "Ghost Dish"}`))
	assert.ErrorIs(t, err, ErrMenuItemNotFound)

	_, err = repo.Delete(ctx, 999)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)

	assert.Equal(t, before, repo.List(ctx))
	assert.Equal(t, 7, repo.NextID())
}

func TestMenuRepository_ListIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(SeedMenuItems())

	assert.Equal(t, repo.List(ctx), repo.List(ctx))
}

func TestMenuRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(SeedMenuItems())

	item, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	item.Ingredients[0] = "tofu"
	*item.Available = false

	listed := repo.List(ctx)
	listed[0].Name = "Changed"

	stored, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "beef", stored.Ingredients[0])
	assert.True(t, *stored.Available)
	assert.Equal(t, "Classic Burger", stored.Name)
}

func TestMenuRepository_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(SeedMenuItems())

	const n = 50
	payload := newCreatePayload(t, "Veggie Wrap")

	var wg sync.WaitGroup
	created := make(chan int, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created <- repo.Create(ctx, payload).ID
		}()
	}
	wg.Wait()
	close(created)

	seen := make(map[int]bool, n)
	for id := range created {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}

	assert.Len(t, seen, n)
	assert.Equal(t, 6+n, repo.Count())
	assert.Equal(t, 7+n, repo.NextID())
}
