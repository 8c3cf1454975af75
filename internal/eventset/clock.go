// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Clock abstracts wall-clock reads inside the wait engine so budget
// accounting can be driven deterministically in tests.

package eventset

import "time"

// Clock reports the current time. The default implementation wraps
// time.Now; tests substitute a fake that advances on a script instead of
// real elapsed time.
type Clock interface {
	Now() time.Time
}

// systemClock is the production Clock, backed by the wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
