package concurrent

import "errors"

// ErrPoisoned is returned when a traversal reaches a node whose previous
// concurrent visit panicked mid-expansion, leaving its discovered state
// unreliable.
var ErrPoisoned = errors.New("concurrent: node poisoned by a prior panic")

// ErrNotFound is returned by Result.Path when no Target was configured for
// the traversal, or the traversal could not reach it.
var ErrNotFound = errors.New("concurrent: target not found")
