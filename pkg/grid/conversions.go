package grid

import (
	"fmt"
	"math"

	"github.com/aretw0/balance/pkg/ternary"
)

// Compass angles in degrees, as returned by Angle.
const (
	East  = 0.0
	North = 90.0
	West  = 180.0
	South = -90.0
)

// ToVector returns the (x, y) trit pair of p.
func (p Position) ToVector() (x, y int) {
	return p.X(), p.Y()
}

// FromVector returns the Position for (x, y). Ordinates outside {-1, 0, 1}
// yield a *RangeError; they are never clamped.
func FromVector(x, y int) (Position, error) {
	if x < -1 || x > 1 || y < -1 || y > 1 {
		return Center, &RangeError{X: x, Y: y}
	}
	return at(x, y), nil
}

// MustFromVector is like FromVector but panics when (x, y) is out of range.
func MustFromVector(x, y int) Position {
	p, err := FromVector(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

// Value returns p as an integer in -4..4 (TopLeft is -4, Center is 0,
// BottomRight is 4).
func (p Position) Value() int {
	return int(p) - 4
}

// FromValue is the inverse of Value.
func FromValue(v int) (Position, error) {
	if v < -4 || v > 4 {
		return Center, fmt.Errorf("%w: %d", ErrInvalidValue, v)
	}
	return Position(v + 4), nil
}

// Scalar returns the squared length x² + y².
func (p Position) Scalar() int {
	x, y := p.ToVector()
	return x*x + y*y
}

// Magnitude returns the Euclidean length of the vector.
func (p Position) Magnitude() float64 {
	switch {
	case p.IsCorner():
		return math.Sqrt2
	case p.IsEdge():
		return 1
	default:
		return 0
	}
}

var angles = [count]float64{
	135, North, 45,
	West, 0, East,
	-135, South, -45,
}

// Angle returns the direction of p in degrees, counterclockwise from East,
// in the range (-180, 180]. Center reports 0.
func (p Position) Angle() float64 {
	return angles[p]
}

// FromAngle returns the Position nearest to the given direction in degrees.
func FromAngle(deg float64) Position {
	rad := deg * math.Pi / 180
	x := int(math.Round(math.Cos(rad)))
	y := int(math.Round(math.Sin(rad)))
	return at(x, y)
}

// ToTernaryPair returns the axis trits as ternary digits.
func (p Position) ToTernaryPair() (x, y ternary.Digit) {
	return ternary.Digit(p.X()), ternary.Digit(p.Y())
}

// FromTernaryPair is the inverse of ToTernaryPair. Digits outside
// {Neg, Zero, Pos} yield a *RangeError, like FromVector.
func FromTernaryPair(x, y ternary.Digit) (Position, error) {
	return FromVector(x.Int(), y.Int())
}

// MustFromTernaryPair is like FromTernaryPair but panics on invalid digits.
func MustFromTernaryPair(x, y ternary.Digit) Position {
	p, err := FromTernaryPair(x, y)
	if err != nil {
		panic(err)
	}
	return p
}
