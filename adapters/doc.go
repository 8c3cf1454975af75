// Package adapters
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Glue code binding the event-set core's pluggable collaborator
// contracts (api.AsyncRuntime, api.Tracer, api.Executor, api.Control) to
// concrete, reusable implementations.
package adapters
