// File: types.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public re-exports of core types, so callers outside this module never
// need to import the internal package directly.

package eventset

import (
	core "github.com/momentics/go-eventset/internal/eventset"
)

// Record is the Operation Record tracked by an EventSet between Insert
// and either a successful free or an ErrInfo drain.
type Record = core.Record

// ActiveRecord is the read-only view of an in-progress operation returned
// by the "eventset.active" debug probe New registers automatically.
type ActiveRecord = core.ActiveRecord
