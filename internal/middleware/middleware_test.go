package middleware_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/menu-api/internal/errs"
	"github.com/deppfellow/menu-api/internal/middleware"
	"github.com/deppfellow/menu-api/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	e := echo.New()
	var seen string
	handler := middleware.RequestID()(func(c echo.Context) error {
		seen = middleware.GetRequestID(c)
		return c.NoContent(http.StatusOK)
	})

	t.Run("generated when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("incoming header is reused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))

		assert.Equal(t, "req-123", seen)
		assert.Equal(t, "req-123", rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("unusable header is replaced", func(t *testing.T) {
		for _, incoming := range []string{strings.Repeat("x", 200), "café"} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(middleware.RequestIDHeader, incoming)
			rec := httptest.NewRecorder()
			require.NoError(t, handler(e.NewContext(req, rec)))

			assert.NotEqual(t, incoming, seen)
			assert.Len(t, seen, 36)
		}
	})
}

func TestRequestTrace(t *testing.T) {
	var buf bytes.Buffer
	app := testutil.NewAppWithLogger(t, zerolog.New(&buf).With().Timestamp().Logger())

	post := httptest.NewRequest(http.MethodPost, "/api/menu", strings.NewReader(
		`{"name":"Veggie Wrap","description":"Fresh vegetables wrapped in a tortilla","price":6.5,"category":"entree","ingredients":["tortilla","lettuce"]}`))
	post.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, post)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/menu", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var lines []map[string]any
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line), scanner.Text())
		lines = append(lines, line)
	}
	require.NoError(t, scanner.Err())

	find := func(message string) map[string]any {
		for _, line := range lines {
			if line["message"] == message {
				return line
			}
		}
		return nil
	}

	postLine := find("POST /api/menu")
	require.NotNil(t, postLine)
	assert.NotEmpty(t, postLine["time"])
	assert.Equal(t, "/api/menu", postLine["uri"])

	getLine := find("GET /api/menu")
	require.NotNil(t, getLine)
	assert.NotEmpty(t, getLine["time"])

	var bodies []string
	for _, line := range lines {
		if msg, _ := line["message"].(string); strings.HasPrefix(msg, "Request Body:") {
			bodies = append(bodies, msg)
		}
	}
	require.Len(t, bodies, 1)
	assert.True(t, strings.HasPrefix(bodies[0], "Request Body:\n{\n  \"name\": \"Veggie Wrap\""), bodies[0])
	assert.Contains(t, bodies[0], "\"ingredients\": [\n    \"tortilla\",\n    \"lettuce\"\n  ]")
}

func TestGetLogger_FallsBackToNop(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotNil(t, middleware.GetLogger(c))
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "no error", err: nil, want: http.StatusOK},
		{name: "http error", err: errs.MenuItemNotFoundError(), want: http.StatusNotFound},
		{name: "echo error", err: echo.ErrUnsupportedMediaType, want: http.StatusUnsupportedMediaType},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, middleware.StatusFromError(http.StatusOK, tt.err))
		})
	}
}

func TestGlobalErrorHandler(t *testing.T) {
	global := middleware.NewGlobalMiddlewares(testutil.NewServer(t))

	tests := []struct {
		name       string
		method     string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			method:     http.MethodPost,
			err:        errs.ValidationError([]errs.FieldError{{Field: "price", Error: "Price must be greater than 0"}}),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Validation failed","messages":["Price must be greater than 0"]}`,
		},
		{
			name:       "not found",
			method:     http.MethodGet,
			err:        errs.MenuItemNotFoundError(),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Menu item not found"}`,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Route not found"}`,
		},
		{
			name:       "echo error keeps status",
			method:     http.MethodPost,
			err:        echo.ErrUnsupportedMediaType,
			wantStatus: http.StatusUnsupportedMediaType,
			wantBody:   `{"error":"Unsupported Media Type"}`,
		},
		{
			name:       "unexpected error",
			method:     http.MethodGet,
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(tt.method, "/api/menu", nil), rec)

			global.GlobalErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestGlobalErrorHandler_Head(t *testing.T) {
	global := middleware.NewGlobalMiddlewares(testutil.NewServer(t))

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodHead, "/api/menu/9", nil), rec)

	global.GlobalErrorHandler(errs.MenuItemNotFoundError(), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestGlobalErrorHandler_Committed(t *testing.T) {
	global := middleware.NewGlobalMiddlewares(testutil.NewServer(t))

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/menu", nil), rec)
	require.NoError(t, c.JSON(http.StatusOK, []string{}))

	global.GlobalErrorHandler(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
}
