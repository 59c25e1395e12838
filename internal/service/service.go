// Package service holds the menu operations behind the HTTP handlers.
//
// Handlers pass validated payloads and raw path ids; the service turns
// ids into store keys and store misses into errs.HTTPError values.
package service
