// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The wait engine: repeatedly sweeps the active list, polling the async
// runtime for each record's status, until either the budget is spent, a
// failure is observed, or nothing is left in progress.

package eventset

import (
	"context"
	"time"

	"github.com/momentics/go-eventset/api"
)

// Wait polls every in-progress operation until one of:
//
//   - the active list drains to empty (everything succeeded),
//   - a sweep observes at least one FAIL or CANCEL (fast-fail: Wait
//     returns immediately at the end of that sweep, without waiting out
//     the rest of the budget),
//   - timeout elapses with no further progress on the last sweep.
//
// A timeout of zero performs exactly one non-blocking sweep. A negative
// timeout is treated as "no deadline": Wait blocks until either the
// list drains or a failure is observed.
//
// Wait returns the number of operations still in progress when it
// returned, and whether any operation has failed or been cancelled
// since the set's err_flag was last cleared.
//
// A classic wrapper-library pattern divides a single overall deadline
// across several Wait calls on different sets, subtracting elapsed time
// from the budget passed to the next call, so that the sum of all calls
// never exceeds the original deadline no matter how many sets are
// involved.
func (s *Set) Wait(ctx context.Context, timeout time.Duration) (numInProgress int, opFailed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, false, api.NewError(api.ErrCodeBadHandle, "event set is closed")
	}

	unlimited := timeout < 0
	start := s.clock.Now()
	sweptOnce := false

	for {
		anyFailed := false
		anySucceeded := false
		var runtimeErr error

		s.active.iterWithRemove(func(r *Record) disposition {
			var budget time.Duration
			if unlimited {
				budget = pollBudget(ctx, time.Hour)
			} else {
				elapsed := s.clock.Now().Sub(start)
				budget = pollBudget(ctx, timeout-elapsed)
			}

			status, perr := s.runtime.Poll(ctx, r.Token, budget)
			if perr != nil {
				runtimeErr = perr
				return stop
			}

			switch status {
			case api.StatusSucceed:
				s.active.unlink(r)
				s.notifyComplete(r, status)
				_ = s.runtime.Release(r.Token)
				s.freeRecord(r)
				anySucceeded = true
				return unlinked

			case api.StatusFail, api.StatusCancel:
				diag, _ := s.runtime.SnapshotDiagnostics(r.Token)
				r.Status = status
				r.Diagnostic = diag
				s.active.unlink(r)
				s.failed.append(r)
				s.errFlag = true
				anyFailed = true
				s.notifyComplete(r, status)
				return unlinked

			default: // StatusInProgress
				return keep
			}
		})
		sweptOnce = true

		if runtimeErr != nil {
			return s.active.Count(), s.errFlag, api.NewError(api.ErrCodeCantWait, "async runtime reported a structural error while polling").
				WithContext("cause", runtimeErr.Error())
		}

		if anyFailed {
			break
		}
		if s.active.Count() == 0 {
			break
		}
		if ctx.Err() != nil {
			break
		}
		if !unlimited {
			elapsed := s.clock.Now().Sub(start)
			if elapsed >= timeout && !anySucceeded {
				break
			}
		}
		if timeout == 0 && sweptOnce {
			break
		}
	}

	return s.active.Count(), s.errFlag, nil
}
