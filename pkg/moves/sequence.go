package moves

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/aretw0/balance/pkg/grid"
)

// Sequence is an ordered list of moves.
// The zero value is an empty sequence ready to use.
type Sequence struct {
	steps []grid.Position
}

// New returns a sequence holding a copy of steps.
func New(steps ...grid.Position) Sequence {
	return Sequence{steps: slices.Clone(steps)}
}

// FromVector returns the shortest sequence whose displacement is (x, y).
// It allocates max(|x|, |y|) steps up front, so the magnitudes must fit in
// memory; an ordinate of math.MinInt panics with ErrVectorTooLarge.
func FromVector(x, y int) Sequence {
	checkVector(x, y)
	n := max(abs(x), abs(y))
	return Sequence{steps: AppendFromVector(make([]grid.Position, 0, n), x, y)}
}

// Len returns the number of steps.
func (s Sequence) Len() int { return len(s.steps) }

// IsEmpty reports whether the sequence has no steps.
func (s Sequence) IsEmpty() bool { return len(s.steps) == 0 }

// At returns the i-th step, or false when i is out of range.
func (s Sequence) At(i int) (grid.Position, bool) {
	if i < 0 || i >= len(s.steps) {
		return grid.Center, false
	}
	return s.steps[i], true
}

// Clone returns an independent copy of s.
func (s Sequence) Clone() Sequence {
	return Sequence{steps: slices.Clone(s.steps)}
}

// Steps returns a copy of the steps.
func (s Sequence) Steps() []grid.Position {
	return slices.Clone(s.steps)
}

// All iterates over the steps in order.
func (s Sequence) All() iter.Seq2[int, grid.Position] {
	return slices.All(s.steps)
}

// Update visits every step in order and lets f rewrite it in place.
// f must store one of the nine grid positions; otherwise the step is
// restored and Update panics.
func (s *Sequence) Update(f func(i int, p *grid.Position)) {
	for i := range s.steps {
		prev := s.steps[i]
		f(i, &s.steps[i])
		if !s.steps[i].Valid() {
			bad := s.steps[i]
			s.steps[i] = prev
			panic(fmt.Sprintf("moves: Update stored invalid %s at step %d", bad, i))
		}
	}
}

// Push appends a step.
func (s *Sequence) Push(p grid.Position) {
	s.steps = append(s.steps, p)
}

// Pop removes and returns the last step.
func (s *Sequence) Pop() (grid.Position, bool) {
	if len(s.steps) == 0 {
		return grid.Center, false
	}
	last := s.steps[len(s.steps)-1]
	s.steps = s.steps[:len(s.steps)-1]
	return last, true
}

// Clear removes every step, keeping the allocated capacity.
func (s *Sequence) Clear() {
	s.steps = s.steps[:0]
}

// ToVector returns the cumulative displacement. It is not clamped.
func (s Sequence) ToVector() (x, y int) {
	return Sum(s)
}

// Normalized returns the shortest sequence with the same displacement.
func (s Sequence) Normalized() Sequence {
	return FromVector(s.ToVector())
}

// Reversed traces the path backward: steps in reverse order, each negated.
// Appending the result to s brings the displacement back to zero.
func (s Sequence) Reversed() Sequence {
	out := make([]grid.Position, len(s.steps))
	for i, p := range s.steps {
		out[len(s.steps)-1-i] = p.Neg()
	}
	return Sequence{steps: out}
}

// Each maps f over every step.
func (s Sequence) Each(f func(grid.Position) grid.Position) Sequence {
	out := make([]grid.Position, len(s.steps))
	for i, p := range s.steps {
		out[i] = f(p)
	}
	return Sequence{steps: out}
}

// EachWith combines every step with the same operand.
func (s Sequence) EachWith(other grid.Position, f func(a, b grid.Position) grid.Position) Sequence {
	return s.Each(func(p grid.Position) grid.Position { return f(p, other) })
}

// EachZip combines the steps of s and other at matching indices. The result
// is as long as the shorter input; extra steps of the longer one are ignored.
func (s Sequence) EachZip(other Sequence, f func(a, b grid.Position) grid.Position) Sequence {
	n := min(len(s.steps), len(other.steps))
	out := make([]grid.Position, n)
	for i := range n {
		out[i] = f(s.steps[i], other.steps[i])
	}
	return Sequence{steps: out}
}

// Concat returns s followed by other.
func (s Sequence) Concat(other Sequence) Sequence {
	return Sequence{steps: slices.Concat(s.steps, other.steps)}
}

// Equal reports whether both sequences hold the same steps in the same order.
func Equal(a, b Sequence) bool {
	return slices.Equal(a.steps, b.steps)
}

// String lists the step names in order, e.g. "[Top Right]".
func (s Sequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range s.steps {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.String())
	}
	b.WriteByte(']')
	return b.String()
}
