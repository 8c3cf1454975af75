// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package eventset

import (
	"testing"
	"time"

	"github.com/momentics/go-eventset/api"
)

func TestNewSetRejectsNilRuntime(t *testing.T) {
	if _, err := NewSet(nil); err == nil {
		t.Fatal("expected error constructing a set with a nil runtime")
	}
}

func TestAppendAssignsIncreasingCounters(t *testing.T) {
	s, err := NewSet(newFakeRuntime())
	if err != nil {
		t.Fatal(err)
	}
	site := api.AppSite{File: "client.go", Func: "PutAsync", Line: 42}

	c1, err := s.Append("H5Dwrite_async", site, "1.14", "tok-1")
	if err != nil {
		t.Fatal(err)
	}
	c2, err := s.Append("H5Dwrite_async", site, "1.14", "tok-2")
	if err != nil {
		t.Fatal(err)
	}
	if c1 != 0 || c2 != 1 {
		t.Fatalf("expected counters 0, 1, got %d, %d", c1, c2)
	}
	if got := s.OpCounter(); got != 2 {
		t.Fatalf("expected op counter 2, got %d", got)
	}
	if got := s.Count(); got != 2 {
		t.Fatalf("expected 2 operations tracked, got %d", got)
	}

	c3, err := s.Append("H5Dwrite_async", site, "1.14", "tok-3")
	if err != nil {
		t.Fatal(err)
	}
	if c3 != 2 {
		t.Fatalf("OpCounter() before this append promised counter 2, but append assigned %d", c3)
	}
}

func TestAppendRejectedByInsertFuncDoesNotLinkRecord(t *testing.T) {
	rejection := api.NewError(api.ErrCodeBadValue, "insert rejected")
	s, err := NewSet(newFakeRuntime(), WithInsertFunc(
		func(apiName string, site api.AppSite, version string, counter uint64, at time.Time, userCtx any) error {
			return rejection
		},
	))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Append("op", api.AppSite{}, "v1", "tok"); err != rejection {
		t.Fatalf("expected the InsertFunc's own error back, got %v", err)
	}
	if got := s.Count(); got != 0 {
		t.Fatalf("expected a rejected insert to leave the set empty, got count %d", got)
	}
}

func TestCloseRefusesWhileOperationsInProgress(t *testing.T) {
	s, err := NewSet(newFakeRuntime())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Append("op", api.AppSite{}, "v1", "tok"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err == nil {
		t.Fatal("expected Close to refuse while an operation is in progress")
	}
}

func TestCloseSucceedsOnEmptySet(t *testing.T) {
	s, err := NewSet(newFakeRuntime())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("expected Close on an empty set to succeed, got %v", err)
	}
	if _, err := s.Append("op", api.AppSite{}, "v1", "tok"); err == nil {
		t.Fatal("expected Append on a closed set to fail")
	}
}
