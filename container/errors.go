package container

import "errors"

// ErrDuplicateKey is returned by Insert when a node with that key is
// already registered.
var ErrDuplicateKey = errors.New("container: duplicate key")

// ErrNotFound is returned by Get and Remove when the requested key isn't
// registered.
var ErrNotFound = errors.New("container: key not found")
