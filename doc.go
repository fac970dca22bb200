/*
Package balance models directional state on a 3×3 grid as a pair of balanced
trits, and sequences of such moves.

The work is split across three packages:

  - pkg/ternary: the balanced-ternary digit (Neg, Zero, Pos) and its logic.
  - pkg/grid: Position, the closed nine-valued type with saturating and
    wrapping movement, rotations, reflections and per-axis operators.
  - pkg/moves: Sequence, an ordered list of Positions read as relative moves,
    with normalization, reversal and element-wise mapping.

This root package adds Walker, which applies moves to a cursor under a
chosen edge policy and reports every step through hooks and slog.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/balance"
		"github.com/aretw0/balance/pkg/grid"
		"github.com/aretw0/balance/pkg/moves"
	)

	func main() {
		p := grid.TopLeft.Right().RotateLeft() // Left

		path := moves.FromVector(3, -2)        // [BottomRight BottomRight Right]
		fmt.Println(p, path, path.Reversed())

		w := balance.New(balance.WithEdgePolicy(balance.EdgeStrict))
		if err := w.Walk(path); err != nil {
			log.Println(err) // step 1 (BottomRight): move leaves the grid: ...
		}
	}

Single positions are plain values and never allocate. Everything in this
module is synchronous and free of I/O.
*/
package balance
