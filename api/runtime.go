// File: api/runtime.go
// Author: momentics <momentics@gmail.com>
//
// AsyncRuntime is the pluggable collaborator the Wait Engine polls. It is
// the event-set core's only notion of "the outside world": the actual
// storage I/O layer, and everything it takes to drive it, lives entirely
// behind this contract.

package api

import (
	"context"
	"time"
)

// AsyncRuntime answers the two questions the wait engine needs about any
// in-flight operation: has it completed, and if it failed, what went
// wrong.
type AsyncRuntime interface {
	// Poll reports the current status of the operation identified by
	// token. A budget of zero must be a non-blocking check; Poll must
	// never block longer than budget.
	Poll(ctx context.Context, token Token, budget time.Duration) (OperationStatus, error)

	// SnapshotDiagnostics returns a deep copy of the diagnostic stack
	// captured at the moment token's operation failed. It is only called
	// for tokens whose last Poll returned StatusFail or StatusCancel.
	SnapshotDiagnostics(token Token) (string, error)

	// Release idempotently tears down any runtime-side resources held for
	// token. It is called exactly once per token, either after a
	// successful free or after diagnostics have been extracted.
	Release(token Token) error
}
