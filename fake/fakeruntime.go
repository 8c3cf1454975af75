// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT
//
// FakeRuntime is a scriptable api.AsyncRuntime double for tests that
// exercise the event-set core without a real storage backend.

package fake

import (
	"context"
	"sync"
	"time"

	"github.com/momentics/go-eventset/api"
)

// FakeRuntime reports whatever status was scripted for a token, one
// value per Poll call, holding the last scripted value once the script
// runs out.
type FakeRuntime struct {
	mu       sync.Mutex
	scripts  map[api.Token][]api.OperationStatus
	diags    map[api.Token]string
	released map[api.Token]bool
}

// NewFakeRuntime returns an empty FakeRuntime; every token polled before
// a Script call reports StatusInProgress indefinitely.
func NewFakeRuntime() *FakeRuntime {
	return &FakeRuntime{
		scripts:  make(map[api.Token][]api.OperationStatus),
		diags:    make(map[api.Token]string),
		released: make(map[api.Token]bool),
	}
}

// Script queues the sequence of statuses Poll will report for token, one
// per call, in order.
func (f *FakeRuntime) Script(token api.Token, statuses ...api.OperationStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scripts[token] = statuses
}

// SetDiagnostic fixes the text SnapshotDiagnostics returns for token.
func (f *FakeRuntime) SetDiagnostic(token api.Token, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.diags[token] = text
}

// Released reports whether Release has been called for token.
func (f *FakeRuntime) Released(token api.Token) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.released[token]
}

// Poll implements api.AsyncRuntime.
func (f *FakeRuntime) Poll(_ context.Context, token api.Token, _ time.Duration) (api.OperationStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	steps := f.scripts[token]
	if len(steps) == 0 {
		return api.StatusInProgress, nil
	}
	next := steps[0]
	if len(steps) > 1 {
		f.scripts[token] = steps[1:]
	}
	return next, nil
}

// SnapshotDiagnostics implements api.AsyncRuntime.
func (f *FakeRuntime) SnapshotDiagnostics(token api.Token) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.diags[token], nil
}

// Release implements api.AsyncRuntime.
func (f *FakeRuntime) Release(token api.Token) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.released[token] = true
	return nil
}

var _ api.AsyncRuntime = (*FakeRuntime)(nil)
