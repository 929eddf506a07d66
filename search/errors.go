package search

import "errors"

// ErrNotFound is returned by SearchPath when a Target was specified and the
// traversal could not reach it.
var ErrNotFound = errors.New("search: target not found")

// ErrMissingLess is returned when a PFS search is executed without a Less
// comparator — PFS cannot order its frontier without one.
var ErrMissingLess = errors.New("search: pfs requires a Less comparator")
