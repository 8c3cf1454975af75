// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package eventset

import (
	"context"
	"testing"
	"time"

	"github.com/momentics/go-eventset/api"
)

func TestWaitDrainsAllOnSuccess(t *testing.T) {
	rt := newFakeRuntime()
	s, err := NewSet(rt)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Append("op", api.AppSite{}, "v1", "tok-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Append("op", api.AppSite{}, "v1", "tok-2"); err != nil {
		t.Fatal(err)
	}
	rt.script("tok-1", api.StatusInProgress, api.StatusSucceed)
	rt.script("tok-2", api.StatusSucceed)

	numInProgress, opFailed, err := s.Wait(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if opFailed {
		t.Fatal("did not expect opFailed")
	}
	if numInProgress != 1 {
		t.Fatalf("expected tok-1 still in progress after the first non-blocking sweep, got %d", numInProgress)
	}

	numInProgress, opFailed, err = s.Wait(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if opFailed {
		t.Fatal("did not expect opFailed")
	}
	if numInProgress != 0 {
		t.Fatalf("expected everything drained, got %d still in progress", numInProgress)
	}
	if got := rt.released["tok-1"]; !got {
		t.Error("expected tok-1 released on success")
	}
}

func TestWaitFastFailsOnSweepWithFailure(t *testing.T) {
	rt := newFakeRuntime()
	s, err := NewSet(rt)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Append("op", api.AppSite{}, "v1", "tok-ok"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Append("op", api.AppSite{}, "v1", "tok-bad"); err != nil {
		t.Fatal(err)
	}
	rt.script("tok-ok", api.StatusInProgress)
	rt.script("tok-bad", api.StatusFail)
	rt.diag["tok-bad"] = "write failed: device full"

	numInProgress, opFailed, err := s.Wait(context.Background(), -1)
	if err != nil {
		t.Fatal(err)
	}
	if !opFailed {
		t.Fatal("expected opFailed to be true")
	}
	if numInProgress != 1 {
		t.Fatalf("expected tok-ok still in progress (fast-fail stops further waiting), got %d", numInProgress)
	}
	if !s.ErrStatus() {
		t.Fatal("expected err_flag set")
	}
	if got := s.ErrCount(); got != 1 {
		t.Fatalf("expected 1 failed record, got %d", got)
	}
}

func TestWaitReportsRuntimeStructuralError(t *testing.T) {
	rt := newFakeRuntime()
	rt.pollErr = context.DeadlineExceeded
	s, err := NewSet(rt)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Append("op", api.AppSite{}, "v1", "tok"); err != nil {
		t.Fatal(err)
	}

	_, _, err = s.Wait(context.Background(), time.Second)
	if err == nil {
		t.Fatal("expected an error when the runtime reports a structural failure")
	}
	apiErr, ok := err.(*api.Error)
	if !ok {
		t.Fatalf("expected *api.Error, got %T", err)
	}
	if apiErr.Code != api.ErrCodeCantWait {
		t.Fatalf("expected ErrCodeCantWait, got %v", apiErr.Code)
	}
}

func TestWaitOnClosedSetFails(t *testing.T) {
	s, err := NewSet(newFakeRuntime())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Wait(context.Background(), 0); err == nil {
		t.Fatal("expected Wait on a closed set to fail")
	}
}

func TestWaitHonorsTimeoutBudget(t *testing.T) {
	clock := newFakeClock()
	rt := newFakeRuntime()
	rt.clock = clock
	rt.advanceOnPoll = 10 * time.Millisecond

	s, err := NewSet(rt, withClock(clock))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Append("op", api.AppSite{}, "v1", "tok"); err != nil {
		t.Fatal(err)
	}
	rt.script("tok", api.StatusInProgress, api.StatusInProgress, api.StatusInProgress, api.StatusInProgress, api.StatusInProgress)

	numInProgress, _, err := s.Wait(context.Background(), 25*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if numInProgress != 1 {
		t.Fatalf("expected the operation still in progress once the budget runs out, got %d", numInProgress)
	}
}
