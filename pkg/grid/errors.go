package grid

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a vector ordinate lies outside {-1, 0, 1}.
var ErrOutOfRange = errors.New("vector out of range")

// ErrInvalidValue is returned by FromValue for values outside -4..4.
var ErrInvalidValue = errors.New("invalid position value")

// ErrUncertain is returned when a Position cannot be read as a boolean.
var ErrUncertain = errors.New("uncertain position")

// RangeError reports the vector that could not be turned into a Position.
type RangeError struct {
	X, Y int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vector (%d, %d): %s", e.X, e.Y, ErrOutOfRange)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
