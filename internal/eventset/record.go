// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Operation Record: the per-operation descriptor threaded through the
// active and failed lists.

package eventset

import (
	"time"

	"github.com/momentics/go-eventset/api"
)

// Record is a single tracked asynchronous operation. Its identity fields
// (APIName, AppSite, AppVersion, Counter, Timestamp, Token) are fixed at
// insert time; Status and Diagnostic only change while the record travels
// through the wait engine.
//
// prev/next make Record an intrusive list node: a Record belongs to
// exactly one list at a time, either the owning set's active list or its
// failed list, never both and never neither once inserted.
type Record struct {
	APIName    string
	AppSite    api.AppSite
	AppVersion string
	Counter    uint64
	Timestamp  time.Time
	Token      api.Token

	Status     api.OperationStatus
	Diagnostic string

	prev, next *Record
}

// reset clears a record to its zero value before it's returned to a pool,
// so a stale Token or Diagnostic from a previous operation can never leak
// into the next one that reuses this allocation.
func (r *Record) reset() {
	*r = Record{}
}
