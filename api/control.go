// File: api/control.go
// Package api defines Control interface.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Control manages dynamic config and runtime metrics.
type Control interface {
	GetConfig() map[string]any
	SetConfig(cfg map[string]any) error
	Stats() map[string]any
	OnReload(fn func())
	RegisterDebugProbe(name string, fn func() any)

	// IncrMetric adds delta to the named counter and returns its new
	// value. Callers that only ever increase a counter never need to
	// read it back first just to compute the next value.
	IncrMetric(key string, delta int64) int64
}
