package algorithms

import "errors"

var (
	// ErrInvalidInput indicates input a producer cannot trace.
	ErrInvalidInput = errors.New("algorithms: invalid input")

	// ErrUnknownAlgorithm indicates a name missing from the registry.
	ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")
)
