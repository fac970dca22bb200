package grid

func clamp(v int) int {
	switch {
	case v < -1:
		return -1
	case v > 1:
		return 1
	default:
		return v
	}
}

// wrap maps v onto {-1, 0, 1} modulo 3.
func wrap(v int) int {
	return ((v+1)%3+3)%3 - 1
}

// Up moves one cell up, staying put on the top row.
func (p Position) Up() Position {
	x, y := p.ToVector()
	return at(x, clamp(y+1))
}

// Down moves one cell down, staying put on the bottom row.
func (p Position) Down() Position {
	x, y := p.ToVector()
	return at(x, clamp(y-1))
}

// Left moves one cell left, staying put on the left column.
func (p Position) Left() Position {
	x, y := p.ToVector()
	return at(clamp(x-1), y)
}

// Right moves one cell right, staying put on the right column.
func (p Position) Right() Position {
	x, y := p.ToVector()
	return at(clamp(x+1), y)
}

// UpWrap moves one cell up, wrapping from the top row to the bottom row.
func (p Position) UpWrap() Position {
	x, y := p.ToVector()
	return at(x, wrap(y+1))
}

// DownWrap moves one cell down, wrapping from the bottom row to the top row.
func (p Position) DownWrap() Position {
	x, y := p.ToVector()
	return at(x, wrap(y-1))
}

// LeftWrap moves one cell left, wrapping to the right column.
func (p Position) LeftWrap() Position {
	x, y := p.ToVector()
	return at(wrap(x-1), y)
}

// RightWrap moves one cell right, wrapping to the left column.
func (p Position) RightWrap() Position {
	x, y := p.ToVector()
	return at(wrap(x+1), y)
}

// FlipH mirrors p across the vertical axis: (-x, y).
func (p Position) FlipH() Position {
	x, y := p.ToVector()
	return at(-x, y)
}

// FlipV mirrors p across the horizontal axis: (x, -y).
func (p Position) FlipV() Position {
	x, y := p.ToVector()
	return at(x, -y)
}

// Neg points p the opposite way: (-x, -y).
func (p Position) Neg() Position {
	x, y := p.ToVector()
	return at(-x, -y)
}

// Not transposes p: (y, x).
func (p Position) Not() Position {
	x, y := p.ToVector()
	return at(y, x)
}

// RotateLeft turns p a quarter counterclockwise: (-y, x).
func (p Position) RotateLeft() Position {
	x, y := p.ToVector()
	return at(-y, x)
}

// RotateRight turns p a quarter clockwise: (y, -x).
func (p Position) RotateRight() Position {
	x, y := p.ToVector()
	return at(y, -x)
}

// CenterH drops the horizontal component: (0, y).
func (p Position) CenterH() Position {
	return at(0, p.Y())
}

// CenterV drops the vertical component: (x, 0).
func (p Position) CenterV() Position {
	return at(p.X(), 0)
}

// Add sums both axes and saturates at the boundary.
func (p Position) Add(o Position) Position {
	return at(clamp(p.X()+o.X()), clamp(p.Y()+o.Y()))
}

// Sub subtracts o axis by axis and saturates at the boundary.
func (p Position) Sub(o Position) Position {
	return at(clamp(p.X()-o.X()), clamp(p.Y()-o.Y()))
}

// Mul multiplies both axes.
func (p Position) Mul(o Position) Position {
	return at(p.X()*o.X(), p.Y()*o.Y())
}

// And takes the per-axis minimum.
func (p Position) And(o Position) Position {
	return p.combine(o, ternaryAnd)
}

// Or takes the per-axis maximum.
func (p Position) Or(o Position) Position {
	return p.combine(o, ternaryOr)
}

// Xor keeps an axis only where exactly one operand is non-zero.
func (p Position) Xor(o Position) Position {
	return p.combine(o, ternaryXor)
}
