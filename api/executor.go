// Package api
// Author: momentics
//
// Executor contract for parallel task dispatch, backing the background
// dispatcher a simulated AsyncRuntime uses to run work off the calling
// goroutine.

package api

// Executor abstracts parallel task execution.
type Executor interface {
	// Submit schedules task for execution. It returns an error if the
	// executor has been closed.
	Submit(task func()) error

	// NumWorkers returns the current number of active worker routines.
	NumWorkers() int

	// Close shuts down the executor, signaling all workers to stop.
	// Tasks already running complete; tasks not yet started are
	// abandoned.
	Close()
}
