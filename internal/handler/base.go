package handler

import (
	"time"

	"github.com/deppfellow/menu-api/internal/middleware"
	"github.com/deppfellow/menu-api/internal/server"
	"github.com/deppfellow/menu-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// Handler carries the shared application container into concrete handlers.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint. It receives a bound, validated
// payload (a pointer type such as *menu.CreateMenuItemPayload) and
// returns the value to render or an error for GlobalErrorHandler.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler renders a successful result.
type ResponseHandler interface {
	Handle(c echo.Context, result any) error

	// GetOperation names the response kind in logs.
	GetOperation() string
}

// JSONResponseHandler renders results as JSON with a fixed status.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// phase records the outcome of one pipeline step ("validation" or
// "handler") in the log and, when present, on the New Relic transaction.
type phase struct {
	name   string
	logger zerolog.Logger
	txn    *newrelic.Transaction
	start  time.Time
}

func startPhase(name string, logger zerolog.Logger, txn *newrelic.Transaction) phase {
	return phase{name: name, logger: logger, txn: txn, start: time.Now()}
}

func (p phase) done(err error) {
	elapsed := time.Since(p.start)

	status := "success"
	if err != nil {
		status = "failed"
		p.logger.Warn().Err(err).Dur(p.name+"_duration", elapsed).Msgf("%s failed", p.name)
	} else {
		p.logger.Debug().Dur(p.name+"_duration", elapsed).Msgf("%s succeeded", p.name)
	}

	if p.txn != nil {
		p.txn.AddAttribute(p.name+".status", status)
		p.txn.AddAttribute(p.name+".duration_ms", elapsed.Milliseconds())
	}
}

// handleRequest binds and validates req, runs handler and renders the
// result. Errors are returned untouched so the error handler picks the
// status and body.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", route).
		Logger()

	bind := startPhase("validation", logger, txn)
	bindErr := validation.BindAndValidate(c, req)
	bind.done(bindErr)
	if bindErr != nil {
		return bindErr
	}

	run := startPhase("handler", logger, txn)
	result, err := handler(c, req)
	run.done(err)
	if err != nil {
		return err
	}

	total := time.Since(start)
	if txn != nil {
		txn.AddAttribute("total.duration_ms", total.Milliseconds())
	}
	logger.Debug().Dur("total_duration", total).Msg("request completed")

	return responseHandler.Handle(c, result)
}

// Handle adapts a typed handler to an echo.HandlerFunc that renders its
// result as JSON with status.
//
// newReq builds a fresh payload for every request:
//
//	items.POST("", handler.Handle(h.Handler, h.CreateMenuItem, http.StatusCreated, func() *menu.CreateMenuItemPayload {
//		return &menu.CreateMenuItemPayload{}
//	}))
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	newReq func() Req,
) echo.HandlerFunc {
	responder := JSONResponseHandler{status: status}

	return func(c echo.Context) error {
		return handleRequest(c, newReq(), func(c echo.Context, req Req) (any, error) {
			return handler(c, req)
		}, responder)
	}
}
