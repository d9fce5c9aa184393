package model

import "errors"

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound = errors.New("game not found")

	// Request errors
	ErrBoardTooLarge = errors.New("board exceeds the configured maximum size")
)
