// File: internal/eventset/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core tracking primitives for asynchronous operation sets: an intrusive
// active/failed list pair, an insert counter, and a wait engine that polls
// a pluggable async runtime until operations complete, fail, or a budget
// runs out.
//
// This package holds no knowledge of any particular transport or storage
// layer; it only knows the api.AsyncRuntime contract. The root eventset
// package wraps Set behind the public facade.
package eventset
