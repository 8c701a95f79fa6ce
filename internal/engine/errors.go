package engine

import "errors"

// Domain errors for model operations.
var (
	// ErrInvalidArgument indicates a configuration value outside its valid range.
	ErrInvalidArgument = errors.New("engine: argument out of valid range")

	// ErrCapacityExceeded indicates an attempt to grow a collection past MaxBodies.
	ErrCapacityExceeded = errors.New("engine: body capacity exceeded")

	// ErrIndexOutOfRange indicates a body index with no corresponding body.
	ErrIndexOutOfRange = errors.New("engine: body index out of range")

	// ErrEmptyCollection indicates an aggregate query on a collection with no bodies.
	ErrEmptyCollection = errors.New("engine: collection is empty")
)
