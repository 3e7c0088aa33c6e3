// Package commands contains the operations that change state: confirming a
// booking and retrying order appends that failed.
// All commands follow the same pattern: a guarded command value built by its
// constructor, and a handler that validates it before doing any work.
package commands

import "time"

// Clock returns the current instant. Handlers take one so tests can pin time.
type Clock func() time.Time
