// Package pool
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT
//
// Generic object pooling built on sync.Pool, used by the event-set core
// to recycle Operation Records across Append/free cycles.
package pool
