package mines

import "errors"

// Contract violations. Callers forwarding only coordinates they generated
// themselves never see these; they are returned wrapped, test with errors.Is.
var (
	// ErrOutOfBounds is returned for a coordinate outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidTransition is returned for a mutation that violates a cell
	// or session invariant, such as placing mines twice or touching an
	// exploded board.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrNotRevealed is returned when an adjacency count is requested for
	// a cell that has not been opened.
	ErrNotRevealed = errors.New("cell not revealed")

	// ErrInvalidSize is returned for non-positive grid dimensions.
	ErrInvalidSize = errors.New("invalid board size")
)
