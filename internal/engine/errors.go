package engine

import "errors"

// Errors returned by the rule engine
var (
	// ErrInvalidConfiguration means the board cannot hold the requested mines
	// around any first click. Returned at construction, no state is created.
	ErrInvalidConfiguration = errors.New("invalid game configuration")

	// ErrInsufficientSpace means the candidate pool outside the safe zone is
	// smaller than the mine count. Construction rules this out, so seeing it
	// from a running game is a defect.
	ErrInsufficientSpace = errors.New("insufficient space for mines")

	// ErrOutOfBounds means the caller passed a coordinate outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
