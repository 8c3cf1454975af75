// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Functional options for Set construction.

package eventset

import "github.com/momentics/go-eventset/api"

// Option customizes a Set at construction time.
type Option func(*Set)

// WithInsertFunc registers a hook fired synchronously on every successful
// Append, before the record becomes visible to a waiter.
func WithInsertFunc(fn api.InsertFunc) Option {
	return func(s *Set) {
		s.insertFunc = fn
	}
}

// WithCompleteFunc registers a hook fired once a record has left the
// active list, whether it succeeded or failed.
func WithCompleteFunc(fn api.CompleteFunc) Option {
	return func(s *Set) {
		s.completeFunc = fn
	}
}

// WithUserContext sets the opaque value passed to both InsertFunc and
// CompleteFunc on every invocation.
func WithUserContext(userCtx any) Option {
	return func(s *Set) {
		s.userCtx = userCtx
	}
}

// WithRecordPool supplies a pool that succeeded records are returned to
// instead of being left for the garbage collector.
func WithRecordPool(pool api.ObjectPool[*Record]) Option {
	return func(s *Set) {
		s.recordPool = pool
	}
}

// withClock overrides the wall clock the wait engine reads budgets
// against. Unexported: only tests need this, production callers always
// get systemClock.
func withClock(c Clock) Option {
	return func(s *Set) {
		s.clock = c
	}
}
