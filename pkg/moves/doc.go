/*
Package moves models ordered sequences of grid moves.

A Sequence is a list of grid.Position values read as consecutive relative
steps. Its cumulative displacement is the plain integer sum of the step
vectors and is not limited to a single cell:

	seq := moves.New(grid.Top, grid.Right, grid.Bottom)
	seq.ToVector()               // (1, 0)
	seq.Normalized()             // [Right]

	path := moves.FromVector(3, -2)
	path.Len()                   // 3: two diagonal steps and one Right

Transformations (Normalized, Reversed, Each, EachZip) return new sequences
and never share storage with their input. Callers that must avoid heap
allocation can build steps into their own fixed-size array with
AppendFromVector, and any ordered container can be summed through the Steps
interface.
*/
package moves
