package literal

import "errors"

var (
	// ErrTooFewNodes is returned by BuildUndirected/BuildDirected when the
	// requested vertex count is below 1. The *Pairs generators do not check
	// their size arguments.
	ErrTooFewNodes = errors.New("literal: too few nodes for this topology")
	// ErrMissingIDFunc is returned when a topology constructor is called
	// without WithIDFunc configuring how indices become keys.
	ErrMissingIDFunc = errors.New("literal: no IDFunc configured")
	// ErrUnknownTarget is returned by Directed/Undirected when an edge
	// literal names a target key that has no corresponding NodeLiteral.
	ErrUnknownTarget = errors.New("literal: edge targets an undeclared node")
	// ErrRandomRegularUnsatisfiable is returned by RandomRegular when no
	// stub-matching attempt produced a simple d-regular graph within the
	// retry budget.
	ErrRandomRegularUnsatisfiable = errors.New("literal: no simple d-regular graph found within retry budget")
)
