// File: doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// go-eventset tracks collections of asynchronous operations issued
// against a pluggable runtime, the way a storage client batches many
// in-flight requests and waits on the batch instead of each request
// individually.
//
// A caller opens an EventSet bound to an api.AsyncRuntime, calls Insert
// once per operation it starts, and later calls Wait to find out how
// many are still running and whether any of them failed. Failures stay
// queued behind ErrCount until drained through ErrInfo, each record
// carrying the call site and diagnostic text needed to report the
// failure back to whoever issued the operation.
package eventset
