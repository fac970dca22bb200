package moves

import (
	"fmt"
	"math"

	"github.com/aretw0/balance/pkg/grid"
)

// Steps is the read-only view of an ordered collection of moves.
// Sequence implements it; fixed-capacity containers can too.
type Steps interface {
	// Len returns the number of steps.
	Len() int
	// At returns the i-th step, or false when i is out of range.
	At(i int) (grid.Position, bool)
}

// Sum returns the cumulative displacement of s.
func Sum(s Steps) (x, y int) {
	for i := 0; i < s.Len(); i++ {
		p, _ := s.At(i)
		dx, dy := p.ToVector()
		x += dx
		y += dy
	}
	return x, y
}

// AppendFromVector appends the shortest run of unit steps covering (x, y)
// to dst and returns the extended slice. Diagonal steps come first, so the
// run has exactly max(|x|, |y|) steps; the caller must be able to hold that
// many. It panics with ErrVectorTooLarge when an ordinate is math.MinInt,
// whose magnitude has no int representation.
func AppendFromVector(dst []grid.Position, x, y int) []grid.Position {
	checkVector(x, y)
	for x != 0 || y != 0 {
		sx, sy := sign(x), sign(y)
		x -= sx
		y -= sy
		dst = append(dst, grid.MustFromVector(sx, sy))
	}
	return dst
}

func checkVector(x, y int) {
	if x == math.MinInt || y == math.MinInt {
		panic(fmt.Errorf("%w: (%d, %d)", ErrVectorTooLarge, x, y))
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
