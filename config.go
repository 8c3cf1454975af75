// File: config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Functional options for constructing an EventSet, the way server.Config
// and server.ServerOption shape the rest of the library's facades.

package eventset

import (
	"github.com/rs/zerolog"

	"github.com/momentics/go-eventset/api"
)

// Option customizes an EventSet at construction time.
type Option func(*EventSet)

// WithInsertHook registers a hook fired synchronously on every
// successful Insert, before the record becomes visible to a waiter.
func WithInsertHook(fn api.InsertFunc) Option {
	return func(s *EventSet) {
		s.insertFunc = fn
	}
}

// WithCompleteHook registers a hook fired once a record has left the
// active list, whether it succeeded, failed, or was cancelled.
func WithCompleteHook(fn api.CompleteFunc) Option {
	return func(s *EventSet) {
		s.completeFunc = fn
	}
}

// WithUserContext sets the opaque value passed to both hooks on every
// invocation.
func WithUserContext(userCtx any) Option {
	return func(s *EventSet) {
		s.userCtx = userCtx
	}
}

// WithRecordPool supplies a pool that succeeded records are returned to.
// The default, pool.SyncPool, is used automatically if this option is
// omitted.
func WithRecordPool(p api.ObjectPool[*Record]) Option {
	return func(s *EventSet) {
		s.recordPool = p
	}
}

// WithTracer attaches a Tracer; Insert and Wait each open a span while
// this is set, and leave no span overhead at all when it isn't.
func WithTracer(tracer api.Tracer) Option {
	return func(s *EventSet) {
		s.tracer = tracer
	}
}

// WithControl attaches a Control implementation for dynamic config and
// metrics, surfaced through GetControl.
func WithControl(control api.Control) Option {
	return func(s *EventSet) {
		s.control = control
	}
}

// WithDebug attaches a Debug implementation, surfaced through
// GetDebugAPI.
func WithDebug(debug api.Debug) Option {
	return func(s *EventSet) {
		s.debug = debug
	}
}

// WithLogger overrides the structured logger used for lifecycle and
// wait-engine diagnostics. The default is zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(s *EventSet) {
		s.logger = logger
	}
}
