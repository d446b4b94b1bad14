package flcs

import "errors"

var (
	// ErrBadDimension indicates a non-positive sequence length.
	ErrBadDimension = errors.New("flcs: width and height must be positive")
	// ErrNilMatcher indicates that no match function was supplied.
	ErrNilMatcher = errors.New("flcs: matcher must be non-nil")
	// ErrBadThreshold indicates a branch threshold above 1.0, which has no
	// meaning for match values capped at 1.
	ErrBadThreshold = errors.New("flcs: branch threshold must be at most 1.0")
)
