// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations and DTOs for the event-set core.

package api

import "time"

// OperationStatus enumerates the lifecycle state of a single asynchronous
// operation tracked by an event set.
type OperationStatus int

const (
	// StatusInProgress is the state of a freshly appended operation, and of
	// any operation the async runtime has not yet reported as finished.
	StatusInProgress OperationStatus = iota
	// StatusSucceed is a transient state: it exists only long enough for
	// the wait engine to unlink and free the record. It is never observed
	// outside the core.
	StatusSucceed
	// StatusFail is a terminal state; the record survives in the failed list.
	StatusFail
	// StatusCancel is a terminal state; the record survives in the failed list.
	StatusCancel
)

// String renders the status the way it would appear in a log line or
// extracted diagnostic record.
func (s OperationStatus) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusSucceed:
		return "succeed"
	case StatusFail:
		return "fail"
	case StatusCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// AppSite identifies the call site, in the issuing wrapper, that enqueued
// an asynchronous operation. The core only stores this; it never captures
// it itself.
type AppSite struct {
	File string
	Func string
	Line uint32
}

// Token is the opaque handle an AsyncRuntime implementation hands back for
// a single in-flight operation. The core never inspects it, only passes it
// back to the AsyncRuntime that issued it. Runtimes may key maps by it (as
// SimulatedRuntime and FakeRuntime do), so its concrete type must be
// comparable.
type Token any

// ErrInfo is the fixed-shape diagnostic record returned by error-info
// extraction for a single failed or cancelled operation.
type ErrInfo struct {
	APIName    string
	AppFile    string
	AppFunc    string
	AppLine    uint32
	AppVersion string
	Counter    uint64
	Timestamp  time.Time
	Status     OperationStatus
	Diagnostic string
}
