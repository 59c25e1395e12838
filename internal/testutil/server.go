// Package testutil builds fully wired application instances for tests.
package testutil

import (
	"testing"

	"github.com/deppfellow/menu-api/internal/config"
	"github.com/deppfellow/menu-api/internal/handler"
	"github.com/deppfellow/menu-api/internal/logger"
	"github.com/deppfellow/menu-api/internal/repository"
	"github.com/deppfellow/menu-api/internal/router"
	"github.com/deppfellow/menu-api/internal/server"
	"github.com/deppfellow/menu-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// App is a seeded application with its router, ready for httptest.
type App struct {
	Server   *server.Server
	Repos    *repository.Repositories
	Services *service.Services
	Router   *echo.Echo
}

// NewServer returns a Server on the default config with a silent logger
// and New Relic disabled.
func NewServer(t *testing.T) *server.Server {
	t.Helper()

	return NewServerWithLogger(t, zerolog.Nop())
}

// NewServerWithLogger is NewServer with log as the server logger.
func NewServerWithLogger(t *testing.T, log zerolog.Logger) *server.Server {
	t.Helper()

	cfg := config.DefaultConfig()

	s, err := server.New(cfg, &log, logger.NewLoggerService(cfg.Observability))
	require.NoError(t, err)

	return s
}

// NewApp wires every layer the same way main does.
func NewApp(t *testing.T) *App {
	t.Helper()

	return NewAppWithLogger(t, zerolog.Nop())
}

// NewAppWithLogger wires the application around log, so tests can
// capture what the middleware and services write.
func NewAppWithLogger(t *testing.T, log zerolog.Logger) *App {
	t.Helper()

	s := NewServerWithLogger(t, log)
	repos := repository.NewRepositories(s)

	services, err := service.NewServices(s, repos)
	require.NoError(t, err)

	handlers := handler.NewHandlers(s, services)

	return &App{
		Server:   s,
		Repos:    repos,
		Services: services,
		Router:   router.NewRouter(s, handlers),
	}
}
