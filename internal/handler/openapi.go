package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/deppfellow/menu-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StaticDir is resolved against the working directory.
const StaticDir = "static"

const (
	openAPIPage     = "openapi.html"
	openAPIDocument = "openapi.json"
)

// OpenAPIHandler serves the API reference page and the document it renders.
type OpenAPIHandler struct {
	Handler
	dir string
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		dir:     StaticDir,
	}
}

// ServeOpenAPIUI renders the reference page. Files are read on every
// request so edits show up without a restart.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := h.read(openAPIPage)
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTMLBlob(http.StatusOK, page)
}

// ServeOpenAPIDocument returns the OpenAPI description of /api/menu.
func (h *OpenAPIHandler) ServeOpenAPIDocument(c echo.Context) error {
	doc, err := h.read(openAPIDocument)
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, doc)
}

func (h *OpenAPIHandler) read(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(h.dir, name))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", name)
	}
	return data, nil
}
