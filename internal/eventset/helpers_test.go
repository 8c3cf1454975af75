// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package eventset

import (
	"context"
	"sync"
	"time"

	"github.com/momentics/go-eventset/api"
)

// fakeRuntime is a scripted api.AsyncRuntime: each token's status is
// whatever scripts[token] says, consumed sweep by sweep so tests can
// model an operation that stays in progress for N polls before resolving.
type fakeRuntime struct {
	mu            sync.Mutex
	scripts       map[api.Token][]api.OperationStatus
	released      map[api.Token]bool
	pollErr       error
	diag          map[api.Token]string
	clock         *fakeClock
	advanceOnPoll time.Duration
}

func newFakeRuntime() *fakeRuntime {
	return &fakeRuntime{
		scripts:  make(map[api.Token][]api.OperationStatus),
		released: make(map[api.Token]bool),
		diag:     make(map[api.Token]string),
	}
}

func (f *fakeRuntime) script(token api.Token, statuses ...api.OperationStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scripts[token] = statuses
}

func (f *fakeRuntime) Poll(_ context.Context, token api.Token, _ time.Duration) (api.OperationStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clock != nil && f.advanceOnPoll > 0 {
		f.clock.Advance(f.advanceOnPoll)
	}
	if f.pollErr != nil {
		return api.StatusInProgress, f.pollErr
	}
	steps := f.scripts[token]
	if len(steps) == 0 {
		return api.StatusInProgress, nil
	}
	next := steps[0]
	if len(steps) > 1 {
		f.scripts[token] = steps[1:]
	} else {
		f.scripts[token] = steps[:1]
	}
	return next, nil
}

func (f *fakeRuntime) SnapshotDiagnostics(token api.Token) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.diag[token], nil
}

func (f *fakeRuntime) Release(token api.Token) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.released[token] = true
	return nil
}

// fakeClock advances only when told to, so wait-budget tests never
// depend on real elapsed wall-clock time.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(0, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
