// Package fake
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT
//
// Trivial test doubles for consumers of the event-set core, mirroring
// how the rest of the library's fakes are shaped: small structs with no
// behavior beyond what a unit test needs to script.
package fake
