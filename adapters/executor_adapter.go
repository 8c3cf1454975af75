// File: adapters/executor_adapter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ExecutorAdapter implements api.Executor by delegating to the internal
// NUMA-aware concurrency.Executor. SimulatedRuntime dispatches every
// piece of scripted Work through one of these instead of holding the
// internal executor directly, so the event-set domain never imports
// internal/concurrency itself.

package adapters

import (
	"github.com/momentics/go-eventset/api"
	"github.com/momentics/go-eventset/internal/concurrency"
)

// ExecutorAdapter wraps an internal concurrency.Executor to satisfy the api.Executor contract.
type ExecutorAdapter struct {
	exec *concurrency.Executor
}

// NewExecutorAdapter constructs an api.Executor with the given number of worker goroutines.
// When numaNode >= 0, each worker pins its OS thread to that NUMA node for locality;
// a negative numaNode leaves workers unpinned.
func NewExecutorAdapter(workers int, numaNode int) api.Executor {
	e := concurrency.NewExecutor(workers, numaNode)
	return &ExecutorAdapter{exec: e}
}

// Submit dispatches a task function to be executed asynchronously.
// Returns an error if the executor has been closed.
func (ea *ExecutorAdapter) Submit(task func()) error {
	return ea.exec.Submit(task)
}

// NumWorkers returns the current number of active worker goroutines.
func (ea *ExecutorAdapter) NumWorkers() int {
	return ea.exec.NumWorkers()
}

// Close shuts down the executor, signaling all workers to exit.
func (ea *ExecutorAdapter) Close() {
	ea.exec.Close()
}

var _ api.Executor = (*ExecutorAdapter)(nil)
