/*
Package ternary provides the balanced-ternary digit used by the grid package.

A Digit is one of Neg (-1), Zero (0) or Pos (+1). Besides conversion to and
from integers, the package implements the per-digit logic the grid lifts onto
both axes of a Position: Kleene-style And/Or/Not, an exclusive Xor, the modal
operators (Possibly, Necessary, Contingently) and the Heyting variants.

	d := ternary.Pos
	d.And(ternary.Zero)    // Zero
	d.Or(ternary.Neg)      // Pos
	ternary.Zero.Post()    // Pos
*/
package ternary
