package service

import (
	"github.com/deppfellow/menu-api/internal/repository"
	"github.com/deppfellow/menu-api/internal/server"
)

// Services groups the business layer handed to the handlers.
type Services struct {
	Menu *MenuService
}

// NewServices wires every service to its repository.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Menu: NewMenuService(s, repos.Menu),
	}, nil
}
