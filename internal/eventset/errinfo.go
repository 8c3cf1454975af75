// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Diagnostics extraction: draining the failed list into the fixed-shape
// records callers actually inspect.

package eventset

import "github.com/momentics/go-eventset/api"

// ErrInfo drains up to n failed or cancelled operations from the set,
// oldest first, releasing each one's runtime resources as it is
// extracted. It never returns more than ErrCount() records, and never
// blocks: everything it returns was already sitting in the failed list.
//
// If the failed list is fully drained by this call, err_flag is cleared;
// if any failed record remains, err_flag stays set so a subsequent
// ErrStatus call still reports the outstanding failures.
func (s *Set) ErrInfo(n int) ([]api.ErrInfo, error) {
	if n < 0 {
		return nil, api.NewError(api.ErrCodeBadValue, "negative count requested from ErrInfo")
	}
	if n == 0 {
		return nil, api.NewError(api.ErrCodeBadValue, "zero count requested from ErrInfo")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failed.Count() == 0 {
		return nil, nil
	}

	out := make([]api.ErrInfo, 0, min(n, s.failed.Count()))
	var getErr error

	s.failed.iterWithRemove(func(r *Record) disposition {
		if len(out) >= n {
			return stop
		}

		out = append(out, api.ErrInfo{
			APIName:    r.APIName,
			AppFile:    r.AppSite.File,
			AppFunc:    r.AppSite.Func,
			AppLine:    r.AppSite.Line,
			AppVersion: r.AppVersion,
			Counter:    r.Counter,
			Timestamp:  r.Timestamp,
			Status:     r.Status,
			Diagnostic: r.Diagnostic,
		})

		if err := s.runtime.Release(r.Token); err != nil {
			getErr = err
		}
		s.failed.unlink(r)
		s.freeRecord(r)
		return unlinked
	})

	if s.failed.Count() == 0 {
		s.errFlag = false
	}

	if getErr != nil {
		return out, api.NewError(api.ErrCodeCantGet, "failed to release runtime resources for one or more drained records").
			WithContext("cause", getErr.Error())
	}
	return out, nil
}
