package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/menu-api/internal/server"
)

// TracingMiddleware wires requests into New Relic. nrApp is nil when no
// license key is configured and both middlewares then pass through.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware opens one transaction per request and puts it in the
// request context for newrelic.FromContext.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing names the transaction after the route template and
// tags it with the request id and menu item id.
//
// Only failures that end as 5xx are noticed as errors. Validation
// failures and unknown ids are client outcomes and stay out of the
// error rate.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			if route := c.Path(); route != "" {
				txn.SetName(c.Request().Method + " " + route)
				txn.AddAttribute("http.route", route)
			}
			txn.AddAttribute("http.real_ip", c.RealIP())

			if requestID := GetRequestID(c); requestID != "" {
				txn.AddAttribute("request.id", requestID)
			}
			if id := c.Param("id"); id != "" {
				txn.AddAttribute("menu_item.id", id)
			}

			err := next(c)

			status := StatusFromError(c.Response().Status, err)
			if err != nil && status >= http.StatusInternalServerError {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}
			txn.AddAttribute("http.status_code", status)

			return err
		}
	}
}
