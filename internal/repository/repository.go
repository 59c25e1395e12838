// Package repository owns the data held by the service.
//
// The menu lives in process memory: an ordered slice guarded by a
// mutex, reset to the seed items on every start.
package repository
