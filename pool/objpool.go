// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT
//
// SyncPool is the default api.ObjectPool implementation: a thin generic
// wrapper over sync.Pool, used to recycle Operation Records instead of
// letting them fall to the garbage collector on every successful wait.

package pool

import "sync"

// SyncPool wraps sync.Pool for generic, type-safe reuse of T.
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a new SyncPool; creator allocates a fresh T whenever
// the underlying sync.Pool has nothing to hand back.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{New: func() any { return creator() }},
	}
}

// Get returns an available instance, allocating one if the pool is empty.
func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

// Put returns obj for reuse by a future Get.
func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}
