package maze

import "errors"

// Sentinel errors for the recoverable pipeline outcomes. Stages wrap them
// with context; callers test with errors.Is.
var (
	// ErrEmptyImage reports an input image with no pixels.
	ErrEmptyImage = errors.New("image has no pixels")

	// ErrGridTooLarge reports an occupancy grid that would exceed the
	// configured maximum dimension.
	ErrGridTooLarge = errors.New("occupancy grid exceeds maximum size")

	// ErrNoOpenings reports fewer than two traversable cells on the grid
	// border, leaving no entrance/exit pair to solve between.
	ErrNoOpenings = errors.New("fewer than two openings on maze border")

	// ErrNoPath reports that the exit is unreachable from the entrance.
	ErrNoPath = errors.New("no path between entrance and exit")
)
