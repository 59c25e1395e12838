// Package middleware holds the Echo middleware chain and the global
// error handler. NewRouter installs them in a fixed order; see there.
package middleware
