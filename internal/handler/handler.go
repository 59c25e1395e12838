// Package handler adapts HTTP requests to service calls.
//
// Menu endpoints go through Handle, which binds and validates the
// payload before the typed handler runs. System endpoints (health,
// docs) are plain echo.HandlerFuncs.
package handler
