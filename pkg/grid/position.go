package grid

import "fmt"

// Position is one of the nine cells of a 3×3 grid.
type Position uint8

// The nine positions in row-major order, top row first.
const (
	TopLeft Position = iota
	Top
	TopRight
	Left
	Center
	Right
	BottomLeft
	Bottom
	BottomRight
)

const count = 9

var vectors = [count][2]int8{
	{-1, 1}, {0, 1}, {1, 1},
	{-1, 0}, {0, 0}, {1, 0},
	{-1, -1}, {0, -1}, {1, -1},
}

var names = [count]string{
	"TopLeft", "Top", "TopRight",
	"Left", "Center", "Right",
	"BottomLeft", "Bottom", "BottomRight",
}

var symbols = [count]string{
	"↖️", "⬆️", "↗️",
	"⬅️", "⏺️", "➡️",
	"↙️", "⬇️", "↘️",
}

// All returns the nine positions in row-major order.
func All() [count]Position {
	return [count]Position{TopLeft, Top, TopRight, Left, Center, Right, BottomLeft, Bottom, BottomRight}
}

// at maps an in-range vector to its Position. Callers guarantee the range.
func at(x, y int) Position {
	return Position((1-y)*3 + x + 1)
}

// Valid reports whether p is one of the nine named positions.
func (p Position) Valid() bool { return p < count }

// X returns the horizontal trit.
func (p Position) X() int { return int(vectors[p][0]) }

// Y returns the vertical trit.
func (p Position) Y() int { return int(vectors[p][1]) }

// HasTop reports whether p is on the top row.
func (p Position) HasTop() bool { return p.Y() == 1 }

// HasBottom reports whether p is on the bottom row.
func (p Position) HasBottom() bool { return p.Y() == -1 }

// HasLeft reports whether p is on the left column.
func (p Position) HasLeft() bool { return p.X() == -1 }

// HasRight reports whether p is on the right column.
func (p Position) HasRight() bool { return p.X() == 1 }

// IsOrthogonal reports whether p lies on the center row or column.
// Center counts as orthogonal.
func (p Position) IsOrthogonal() bool { return p.X() == 0 || p.Y() == 0 }

// IsDiagonal reports whether p lies on one of the two diagonals.
// Center counts as diagonal.
func (p Position) IsDiagonal() bool { return p.X() != 0 && p.Y() != 0 || p == Center }

// IsEdge reports whether p is one of the four side midpoints.
func (p Position) IsEdge() bool { return p != Center && p.IsOrthogonal() }

// IsCorner reports whether p is one of the four corners.
func (p Position) IsCorner() bool { return p.X() != 0 && p.Y() != 0 }

// Symbol returns an arrow glyph for p.
func (p Position) Symbol() string { return symbols[p] }

// String returns the name of p, such as "TopLeft".
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Position(%d)", uint8(p))
	}
	return names[p]
}
