package onet

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the board model and controller.
var (
	// ErrGeneration is wrapped by every GenerationError.
	ErrGeneration = errors.New("onet: board generation failed")

	// ErrNoShuffles is returned when the shuffle budget is spent.
	ErrNoShuffles = errors.New("onet: no shuffles left")

	// ErrRemovalPending is returned while a deferred removal awaits Commit.
	ErrRemovalPending = errors.New("onet: removal pending")

	// ErrNothingPending is returned by Commit when no removal is deferred.
	ErrNothingPending = errors.New("onet: no pending removal")
)

// GenerationError reports a configuration that cannot produce a board.
type GenerationError struct {
	Rows      int
	Cols      int
	TileTypes int
	Reason    string
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("onet: cannot generate %dx%d board with %d tile types: %s",
		e.Rows, e.Cols, e.TileTypes, e.Reason)
}

// Unwrap lets errors.Is match ErrGeneration.
func (e *GenerationError) Unwrap() error {
	return ErrGeneration
}
