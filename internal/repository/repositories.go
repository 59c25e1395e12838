package repository

import (
	"github.com/deppfellow/menu-api/internal/server"
)

// Repositories is a container for all repository instances.
//
// It is built once in main and handed to the service layer, so every
// request works against the same store and tests can build their own.
type Repositories struct {
	Menu *MenuRepository
}

// NewRepositories constructs the repository container with the menu
// seeded from SeedMenuItems.
func NewRepositories(s *server.Server) *Repositories {
	menu := NewMenuRepository(SeedMenuItems())

	if s.Metrics != nil {
		s.Metrics.TrackMenuItems(menu.Count)
	}

	s.Logger.Info().
		Int("items", menu.Count()).
		Int("next_id", menu.NextID()).
		Msg("menu store initialized")

	return &Repositories{
		Menu: menu,
	}
}
