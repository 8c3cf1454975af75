// File: api/callbacks.go
// Author: momentics <momentics@gmail.com>
//
// Optional user callback surface for an event set: two hooks, each taking
// an opaque user context, fired on insert and on completion respectively.
// Modeled as typed function values rather than a capability interface, the
// way the library shapes Handler and Scheduler contracts elsewhere in api/.

package api

import "time"

// InsertFunc is invoked synchronously, before a newly appended record
// becomes visible to a waiter, for every successful Append. Returning an
// error causes Append itself to fail and the record is not added.
type InsertFunc func(apiName string, site AppSite, version string, counter uint64, at time.Time, userCtx any) error

// CompleteFunc is invoked after a record has been transplanted out of the
// active list (freed on success, or moved to the failed list). Any error
// it returns is never propagated and never aborts the sweep; the EventSet
// facade logs it at warn level.
type CompleteFunc func(apiName string, site AppSite, version string, counter uint64, at time.Time, status OperationStatus, userCtx any) error
