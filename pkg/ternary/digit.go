package ternary

import "fmt"

// Digit is a balanced-ternary digit.
type Digit int8

const (
	Neg  Digit = -1
	Zero Digit = 0
	Pos  Digit = 1
)

// Digits lists the three digits in ascending order.
var Digits = [3]Digit{Neg, Zero, Pos}

// FromInt converts v to a Digit. Values outside {-1, 0, 1} are rejected.
func FromInt(v int) (Digit, error) {
	if v < -1 || v > 1 {
		return Zero, fmt.Errorf("%w: %d", ErrInvalidDigit, v)
	}
	return Digit(v), nil
}

// MustFromInt is like FromInt but panics on invalid input.
func MustFromInt(v int) Digit {
	d, err := FromInt(v)
	if err != nil {
		panic(err)
	}
	return d
}

// Int returns the digit as -1, 0 or 1.
func (d Digit) Int() int { return int(d) }

// Valid reports whether d holds one of the three digits.
func (d Digit) Valid() bool { return d >= Neg && d <= Pos }

// String returns "-", "0" or "+".
func (d Digit) String() string {
	switch d {
	case Neg:
		return "-"
	case Zero:
		return "0"
	case Pos:
		return "+"
	default:
		return fmt.Sprintf("Digit(%d)", int8(d))
	}
}
