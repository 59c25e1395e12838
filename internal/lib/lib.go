// Package lib groups helpers that belong to no single layer:
// Prometheus metrics (lib/metrics) and small utilities (lib/utils).
package lib
