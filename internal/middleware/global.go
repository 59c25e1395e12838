package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/deppfellow/menu-api/internal/errs"
	"github.com/deppfellow/menu-api/internal/lib/utils"
	"github.com/deppfellow/menu-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// MaxBodySize caps request bodies read by the JSON binder and RequestTrace.
const MaxBodySize = "1M"

// GlobalMiddlewares groups the middleware applied to every route and the
// global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo's CORS middleware configured by the server config.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// BodyLimit rejects bodies larger than MaxBodySize with 413.
func (global *GlobalMiddlewares) BodyLimit() echo.MiddlewareFunc {
	return middleware.BodyLimit(MaxBodySize)
}

// RequestTrace logs every request as it arrives: method and original
// URI, plus the indented JSON body for POST and PUT. It only observes;
// the body is restored for the binder and a body that is not JSON is
// left for the binder to reject.
func (global *GlobalMiddlewares) RequestTrace() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			logger := GetLogger(c)

			logger.Info().
				Str("uri", req.RequestURI).
				Msgf("%s %s", req.Method, req.RequestURI)

			if req.Method != http.MethodPost && req.Method != http.MethodPut {
				return next(c)
			}

			body, err := io.ReadAll(req.Body)
			if err != nil {
				// echo.ErrStatusRequestEntityTooLarge from BodyLimit
				return err
			}
			req.Body = io.NopCloser(bytes.NewReader(body))

			if pretty, err := utils.IndentJSON(body); err == nil {
				logger.Info().
					Str("body", pretty).
					Msg("Request Body:\n" + pretty)
			}

			return next(c)
		}
	}
}

// RequestLogger returns Echo's request logger middleware writing one
// "API" line per request through zerolog, at a level chosen by status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := StatusFromError(v.Status, v.Error)

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// StatusFromError returns the status the error handler will write.
//
// When a handler returns an error Echo has not written the response yet,
// so the recorded status is still 200. The error knows better.
func StatusFromError(status int, err error) int {
	if err == nil {
		return status
	}

	var httpErr *errs.HTTPError
	var echoErr *echo.HTTPError

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Status
	case errors.As(err, &echoErr):
		return echoErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// Recover returns Echo's panic recovery middleware.
// Panics become errors and reach GlobalErrorHandler as 500s.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the final error funnel for the entire HTTP server.
//
// Every error is translated into errs.Response JSON:
//   - *errs.HTTPError keeps its status, message and field messages
//   - *echo.HTTPError keeps its status; a route 404 reads "Route not found"
//   - anything else becomes a generic 500
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		switch {
		case errors.As(err, &echoErr) && echoErr.Code == http.StatusNotFound:
			httpErr = errs.NewNotFoundError("Route not found", nil)

		case errors.As(err, &echoErr):
			message := http.StatusText(echoErr.Code)
			if msg, ok := echoErr.Message.(string); ok && msg != "" {
				message = msg
			}
			httpErr = &errs.HTTPError{
				Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
				Message: message,
				Status:  echoErr.Code,
			}

		default:
			httpErr = errs.NewInternalServerError()
		}
	}

	logger := GetLogger(c)

	var e *zerolog.Event
	if httpErr.Status >= http.StatusInternalServerError {
		e = logger.Error().Stack()
	} else {
		e = logger.Warn()
	}

	e.Err(err).
		Int("status", httpErr.Status).
		Str("error_code", httpErr.Code).
		Strs("messages", httpErr.Messages()).
		Msg(httpErr.Message)

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Status)
		return
	}

	_ = c.JSON(httpErr.Status, httpErr.Response())
}
