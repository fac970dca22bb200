/*
Package grid models a position or direction on a 3×3 grid as a pair of
balanced trits.

A Position is one of nine named values. Its vector form (x, y) uses
x ∈ {-1, 0, 1} growing to the right and y ∈ {-1, 0, 1} growing upward, so
Top is (0, 1) and BottomLeft is (-1, -1):

	TopLeft    Top     TopRight
	Left       Center  Right
	BottomLeft Bottom  BottomRight

Every operation that maps Positions to Positions is total: values are never
constructed outside the nine cases. The only fallible constructors are
FromVector and FromValue, which report an error instead of clamping.

	p := grid.TopLeft
	p = p.Right()        // Top
	p = p.RotateLeft()   // Left
	p.ToVector()         // (-1, 0)

	q, err := grid.FromVector(2, 0)  // err wraps grid.ErrOutOfRange

Binary operators combine two Positions axis by axis. Add and Sub saturate
at the boundary, Mul is the per-axis product, and And, Or and Xor follow the
balanced-ternary logic of package ternary.
*/
package grid
