// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Set is the core event-set type: the active/failed lists, the insert
// counter, the err_flag, and the single mutex that makes every exported
// method here safe to call from multiple goroutines even though the
// original design assumes a single cooperative caller per set.

package eventset

import (
	"context"
	"sync"
	"time"

	"github.com/momentics/go-eventset/api"
)

// Set tracks every asynchronous operation registered against it, from
// Append until either it succeeds and is freed, or it fails and is
// drained through ErrInfo.
type Set struct {
	mu sync.Mutex

	runtime api.AsyncRuntime

	active *list
	failed *list

	opCounter uint64
	errFlag   bool
	closed    bool

	insertFunc   api.InsertFunc
	completeFunc api.CompleteFunc
	userCtx      any
	recordPool   api.ObjectPool[*Record]
	clock        Clock
}

// NewSet creates an empty event set bound to runtime, which the wait
// engine polls for completion of every token appended to this set.
func NewSet(runtime api.AsyncRuntime, opts ...Option) (*Set, error) {
	if runtime == nil {
		return nil, api.NewError(api.ErrCodeBadValue, "event set requires a non-nil async runtime")
	}
	s := &Set{
		runtime: runtime,
		active:  newList(),
		failed:  newList(),
		clock:   systemClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Append registers a new asynchronous operation with the set, assigning
// it the next operation counter value and firing InsertFunc, if one is
// registered, before the record becomes visible to Wait.
//
// Append returns the error InsertFunc returned, if any, without adding
// the record: a rejected insert never touches the counter's visible
// side effects beyond having been attempted.
func (s *Set) Append(apiName string, site api.AppSite, appVersion string, token api.Token) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, api.NewError(api.ErrCodeBadHandle, "event set is closed")
	}

	counter := s.opCounter
	now := s.clock.Now()

	if s.insertFunc != nil {
		if err := s.insertFunc(apiName, site, appVersion, counter, now, s.userCtx); err != nil {
			return 0, err
		}
	}

	r := s.allocRecord()
	r.APIName = apiName
	r.AppSite = site
	r.AppVersion = appVersion
	r.Counter = counter
	r.Timestamp = now
	r.Token = token
	r.Status = api.StatusInProgress

	s.active.append(r)
	s.opCounter++

	return counter, nil
}

// Count reports the number of operations still registered with the set:
// everything in progress plus everything failed but not yet drained by
// ErrInfo.
func (s *Set) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active.Count() + s.failed.Count()
}

// OpCounter peeks at the running insert counter without side effects.
// Wrapper libraries that hand out their own operation identifiers use
// this to correlate their IDs with the set's, without needing to track
// every Append call themselves.
func (s *Set) OpCounter() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opCounter
}

// ErrStatus reports whether any operation tracked by this set has ever
// failed or been cancelled and not yet been cleared by fully draining
// ErrInfo.
func (s *Set) ErrStatus() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errFlag
}

// ErrCount reports how many failed or cancelled operations are waiting
// to be drained by ErrInfo.
func (s *Set) ErrCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed.Count()
}

// Close releases the set. It fails with ErrCodeBusy if any operation is
// still in progress; callers are expected to Wait first. Any undrained
// failed records have their runtime resources released and are
// discarded without ever reaching ErrInfo.
func (s *Set) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	if s.active.Count() > 0 {
		return api.NewError(api.ErrCodeBusy, "event set has operations still in progress").
			WithContext("in_progress", s.active.Count())
	}

	s.failed.iterWithRemove(func(r *Record) disposition {
		_ = s.runtime.Release(r.Token)
		s.failed.unlink(r)
		s.freeRecord(r)
		return unlinked
	})
	s.errFlag = false
	s.closed = true
	return nil
}

// ActiveRecord is a point-in-time, read-only view of one in-progress
// operation, used only for debug introspection; it never mutates the
// set it was read from.
type ActiveRecord struct {
	APIName   string
	Counter   uint64
	Timestamp time.Time
}

// ActiveSnapshot copies every record currently in the active list,
// oldest first. Intended for wiring into a debug probe, not for hot-path
// use: it walks and allocates, it does not peek a cached count.
func (s *Set) ActiveSnapshot() []ActiveRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ActiveRecord, 0, s.active.Count())
	s.active.iterWithRemove(func(r *Record) disposition {
		out = append(out, ActiveRecord{APIName: r.APIName, Counter: r.Counter, Timestamp: r.Timestamp})
		return keep
	})
	return out
}

// allocRecord draws a record from the configured pool, or allocates one
// directly when no pool was supplied.
func (s *Set) allocRecord() *Record {
	if s.recordPool != nil {
		r := s.recordPool.Get()
		if r != nil {
			return r
		}
	}
	return &Record{}
}

// freeRecord resets r and returns it to the pool, if one is configured.
func (s *Set) freeRecord(r *Record) {
	r.reset()
	if s.recordPool != nil {
		s.recordPool.Put(r)
	}
}

// notifyComplete fires CompleteFunc for r, swallowing any error it
// returns: completion notification is best-effort logging, never a
// reason to fail the sweep that triggered it.
func (s *Set) notifyComplete(r *Record, status api.OperationStatus) {
	if s.completeFunc == nil {
		return
	}
	_ = s.completeFunc(r.APIName, r.AppSite, r.AppVersion, r.Counter, s.clock.Now(), status, s.userCtx)
}

// pollBudget clamps remaining to be non-negative and never larger than
// the context's own deadline, so a record's individual poll can never
// outlive either.
func pollBudget(ctx context.Context, remaining time.Duration) time.Duration {
	if remaining < 0 {
		remaining = 0
	}
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < remaining {
			remaining = left
		}
	}
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}
