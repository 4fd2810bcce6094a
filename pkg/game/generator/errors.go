package generator

import "errors"

var (
	// ErrInvalidDimension indicates a non-positive width or height.
	ErrInvalidDimension = errors.New("generator: width and height must be at least 1")
	// ErrNilSource indicates Generate was called without a random source.
	ErrNilSource = errors.New("generator: random source must not be nil")
)
