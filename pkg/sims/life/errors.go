package life

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfBounds is matched by every error returned for a coordinate
	// outside the grid.
	ErrOutOfBounds = errors.New("life: coordinate out of bounds")
	// ErrInvalidDimensions is returned when a grid is created with a
	// non-positive height or width.
	ErrInvalidDimensions = errors.New("life: grid dimensions must be positive")
	// ErrInvalidTimestep is returned when the throttle interval is below 1.
	ErrInvalidTimestep = errors.New("life: timestep must be at least 1")
	// ErrUnknownPattern is returned by Seed for an unregistered pattern name.
	ErrUnknownPattern = errors.New("life: unknown pattern")
	// ErrFormat is returned when persisted or restored state is malformed or
	// does not match the grid.
	ErrFormat = errors.New("life: malformed grid state")
)

// BoundsError describes a rejected coordinate.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("life: cell (%d,%d) outside %dx%d grid", e.X, e.Y, e.Width, e.Height)
}

// Is makes errors.Is(err, ErrOutOfBounds) hold for any *BoundsError.
func (e *BoundsError) Is(target error) bool { return target == ErrOutOfBounds }
