// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package eventset

import "testing"

func TestListAppendAndCount(t *testing.T) {
	l := newList()
	if l.Count() != 0 {
		t.Fatalf("expected empty list, got count %d", l.Count())
	}
	a, b, c := &Record{Counter: 1}, &Record{Counter: 2}, &Record{Counter: 3}
	l.append(a)
	l.append(b)
	l.append(c)
	if l.Count() != 3 {
		t.Fatalf("expected count 3, got %d", l.Count())
	}

	var seen []uint64
	l.iterWithRemove(func(r *Record) disposition {
		seen = append(seen, r.Counter)
		return keep
	})
	if len(seen) != 3 || seen[0] != 1 || seen[1] != 2 || seen[2] != 3 {
		t.Fatalf("expected insertion order [1 2 3], got %v", seen)
	}
}

func TestListUnlinkDuringWalk(t *testing.T) {
	l := newList()
	a, b, c := &Record{Counter: 1}, &Record{Counter: 2}, &Record{Counter: 3}
	l.append(a)
	l.append(b)
	l.append(c)

	var seen []uint64
	l.iterWithRemove(func(r *Record) disposition {
		seen = append(seen, r.Counter)
		if r == b {
			l.unlink(r)
			return unlinked
		}
		return keep
	})
	if len(seen) != 3 {
		t.Fatalf("expected all 3 records visited once, got %v", seen)
	}
	if l.Count() != 2 {
		t.Fatalf("expected count 2 after unlinking one record, got %d", l.Count())
	}

	var after []uint64
	l.iterWithRemove(func(r *Record) disposition {
		after = append(after, r.Counter)
		return keep
	})
	if len(after) != 2 || after[0] != 1 || after[1] != 3 {
		t.Fatalf("expected remaining [1 3], got %v", after)
	}
}

func TestListStopShortCircuits(t *testing.T) {
	l := newList()
	l.append(&Record{Counter: 1})
	l.append(&Record{Counter: 2})
	l.append(&Record{Counter: 3})

	var seen int
	l.iterWithRemove(func(r *Record) disposition {
		seen++
		if r.Counter == 2 {
			return stop
		}
		return keep
	})
	if seen != 2 {
		t.Fatalf("expected walk to stop after 2 records, visited %d", seen)
	}
	if l.Count() != 3 {
		t.Fatalf("stop must not mutate the list, got count %d", l.Count())
	}
}

func TestListAppendDuringWalkNotVisitedSameSweep(t *testing.T) {
	l := newList()
	a, b := &Record{Counter: 1}, &Record{Counter: 2}
	l.append(a)
	l.append(b)

	var seen []uint64
	appended := false
	l.iterWithRemove(func(r *Record) disposition {
		seen = append(seen, r.Counter)
		if !appended {
			appended = true
			l.append(&Record{Counter: 99})
		}
		return keep
	})
	if len(seen) != 2 {
		t.Fatalf("expected only the 2 original records visited, got %v", seen)
	}
	if l.Count() != 3 {
		t.Fatalf("expected the appended record to remain linked, got count %d", l.Count())
	}

	var second []uint64
	l.iterWithRemove(func(r *Record) disposition {
		second = append(second, r.Counter)
		return keep
	})
	if len(second) != 3 || second[2] != 99 {
		t.Fatalf("expected the appended record to surface on the next sweep, got %v", second)
	}
}
