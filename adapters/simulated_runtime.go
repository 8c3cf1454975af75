// File: adapters/simulated_runtime.go
// Package adapters provides glue between internal concurrency and the
// event-set core's api.AsyncRuntime contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SimulatedRuntime stands in for a real async storage backend (a VOL
// connector, an object-store client, a DMA engine) in tests, demos, and
// benchmarks: it dispatches scripted work onto a NUMA-aware executor and
// answers Poll the same way a real backend would, by reporting whatever
// that work produced once it finishes.

package adapters

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/eapache/queue"

	"github.com/momentics/go-eventset/api"
)

// Work is the unit of simulated asynchronous I/O: it runs on a
// background worker and reports the terminal status the operation
// should resolve to, plus a diagnostic string recorded only when the
// status is a failure.
type Work func() (status api.OperationStatus, diagnostic string)

type opState struct {
	mu     sync.Mutex
	status api.OperationStatus
	diag   string
	done   chan struct{}
}

// SimulatedRuntime is an api.AsyncRuntime backed by an internal
// worker pool instead of real I/O.
type SimulatedRuntime struct {
	exec api.Executor

	mu  sync.Mutex
	ops map[api.Token]*opState

	// recent is a bounded FIFO of the most recently dispatched tokens,
	// surfaced through a debug probe; eapache/queue gives O(1) push/pop
	// without the slice-reslicing a plain []api.Token would need.
	recent      *queue.Queue
	recentLimit int
}

// NewSimulatedRuntime starts workers workers, pinned to numaNode when
// numaNode >= 0.
func NewSimulatedRuntime(workers, numaNode int) *SimulatedRuntime {
	return &SimulatedRuntime{
		exec:        NewExecutorAdapter(workers, numaNode),
		ops:         make(map[api.Token]*opState),
		recent:      queue.New(),
		recentLimit: 64,
	}
}

// Dispatch registers token as a new in-flight operation and schedules
// work to run on the background executor. It returns ErrExecutorClosed
// if the runtime has been shut down.
func (r *SimulatedRuntime) Dispatch(token api.Token, work Work) error {
	st := &opState{status: api.StatusInProgress, done: make(chan struct{})}

	r.mu.Lock()
	r.ops[token] = st
	r.recent.Add(token)
	for r.recent.Length() > r.recentLimit {
		r.recent.Remove()
	}
	r.mu.Unlock()

	return r.exec.Submit(func() {
		status, diag := work()
		st.mu.Lock()
		st.status = status
		st.diag = diag
		st.mu.Unlock()
		close(st.done)
	})
}

// Poll implements api.AsyncRuntime.
func (r *SimulatedRuntime) Poll(ctx context.Context, token api.Token, budget time.Duration) (api.OperationStatus, error) {
	r.mu.Lock()
	st, ok := r.ops[token]
	r.mu.Unlock()
	if !ok {
		return api.StatusInProgress, fmt.Errorf("simulated runtime: unknown token %v", token)
	}

	if budget <= 0 {
		select {
		case <-st.done:
		default:
			return api.StatusInProgress, nil
		}
	} else {
		timer := time.NewTimer(budget)
		defer timer.Stop()
		select {
		case <-st.done:
		case <-timer.C:
			return api.StatusInProgress, nil
		case <-ctx.Done():
			return api.StatusInProgress, ctx.Err()
		}
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	return st.status, nil
}

// SnapshotDiagnostics implements api.AsyncRuntime.
func (r *SimulatedRuntime) SnapshotDiagnostics(token api.Token) (string, error) {
	r.mu.Lock()
	st, ok := r.ops[token]
	r.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("simulated runtime: unknown token %v", token)
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.diag, nil
}

// Release implements api.AsyncRuntime.
func (r *SimulatedRuntime) Release(token api.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ops, token)
	return nil
}

// RecentDispatches returns, oldest first, up to the configured history
// limit of tokens most recently passed to Dispatch. Intended for wiring
// into a debug probe.
func (r *SimulatedRuntime) RecentDispatches() []api.Token {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]api.Token, 0, r.recent.Length())
	for i := 0; i < r.recent.Length(); i++ {
		out = append(out, r.recent.Get(i).(api.Token))
	}
	return out
}

// Close shuts down the background executor. In-flight work is abandoned;
// any token whose operation never reached done will poll InProgress
// forever afterward.
func (r *SimulatedRuntime) Close() {
	r.exec.Close()
}

var _ api.AsyncRuntime = (*SimulatedRuntime)(nil)
