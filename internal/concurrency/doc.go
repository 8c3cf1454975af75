// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// NUMA-aware worker pool shared by the simulated async runtime: an
// Executor backed by per-worker lock-free queues and a global fallback
// channel, with optional OS-thread pinning on Linux and Windows.
package concurrency
