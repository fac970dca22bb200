package moves

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/balance/pkg/grid"
)

func TestNew_CopiesInput(t *testing.T) {
	steps := []grid.Position{grid.Top, grid.Right}
	seq := New(steps...)
	steps[0] = grid.Bottom

	p, ok := seq.At(0)
	require.True(t, ok)
	assert.Equal(t, grid.Top, p)
	assert.Equal(t, 2, seq.Len())
	assert.False(t, seq.IsEmpty())

	var zero Sequence
	assert.True(t, zero.IsEmpty())
	x, y := zero.ToVector()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestAt_OutOfRange(t *testing.T) {
	seq := New(grid.Left)
	_, ok := seq.At(1)
	assert.False(t, ok)
	_, ok = seq.At(-1)
	assert.False(t, ok)
}

func TestToVector_IsUnclamped(t *testing.T) {
	seq := New(grid.Top, grid.Right, grid.Bottom)
	x, y := seq.ToVector()
	assert.Equal(t, 1, x)
	assert.Equal(t, 0, y)

	long := New(grid.TopRight, grid.TopRight, grid.TopRight, grid.TopRight, grid.Top)
	x, y = long.ToVector()
	assert.Equal(t, 4, x)
	assert.Equal(t, 5, y)
}

func TestFromVector(t *testing.T) {
	for x := -7; x <= 7; x++ {
		for y := -7; y <= 7; y++ {
			seq := FromVector(x, y)
			gx, gy := seq.ToVector()
			assert.Equal(t, x, gx, "FromVector(%d, %d)", x, y)
			assert.Equal(t, y, gy, "FromVector(%d, %d)", x, y)
			assert.Equal(t, max(abs(x), abs(y)), seq.Len(), "FromVector(%d, %d)", x, y)
		}
	}

	assert.True(t, FromVector(0, 0).IsEmpty())
	assert.True(t, Equal(New(grid.BottomLeft, grid.BottomLeft), FromVector(-2, -2)))
}

func TestFromVector_DiagonalsFirst(t *testing.T) {
	seq := FromVector(3, -2)
	require.Equal(t, 3, seq.Len())
	assert.Equal(t, "[BottomRight BottomRight Right]", seq.String())

	diagonal, straight := 0, 0
	for _, p := range seq.All() {
		if p.IsCorner() {
			diagonal++
		} else if p.X() != 0 && p.Y() == 0 {
			straight++
		}
	}
	assert.Equal(t, 2, diagonal)
	assert.Equal(t, 1, straight)

	x, y := seq.ToVector()
	assert.Equal(t, 3, x)
	assert.Equal(t, -2, y)
}

func TestFromVector_MinIntPanics(t *testing.T) {
	calls := map[string]func(){
		"FromVector x":       func() { FromVector(math.MinInt, 0) },
		"FromVector y":       func() { FromVector(3, math.MinInt) },
		"AppendFromVector x": func() { AppendFromVector(nil, math.MinInt, math.MinInt) },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if assert.True(t, ok, "panic value %v is not an error", r) {
					assert.True(t, errors.Is(err, ErrVectorTooLarge))
				}
			}()
			call()
		})
	}
}

func TestAppendFromVector_ReusesCapacity(t *testing.T) {
	var buf [8]grid.Position
	steps := AppendFromVector(buf[:0], -1, 4)

	require.Len(t, steps, 4)
	assert.Same(t, &buf[0], &steps[0], "steps must live in the caller's array")
	assert.Equal(t, []grid.Position{grid.TopLeft, grid.Top, grid.Top, grid.Top}, steps)

	steps = AppendFromVector(steps, 1, 0)
	assert.Equal(t, grid.Right, steps[4])
}

func TestNormalized(t *testing.T) {
	seq := New(grid.Top, grid.Right, grid.Bottom)
	assert.True(t, Equal(New(grid.Right), seq.Normalized()))

	seq = New(grid.Top, grid.Top, grid.Top, grid.Bottom)
	norm := seq.Normalized()
	assert.Equal(t, 2, norm.Len())
	x, y := norm.ToVector()
	assert.Equal(t, 0, x)
	assert.Equal(t, 2, y)

	round := New(grid.Left, grid.Top, grid.Right, grid.Bottom)
	assert.True(t, round.Normalized().IsEmpty())
}

func TestNormalized_Idempotent(t *testing.T) {
	inputs := []Sequence{
		{},
		New(grid.Center, grid.Center),
		New(grid.Top, grid.TopLeft, grid.Left, grid.BottomRight, grid.Right, grid.Right),
		FromVector(-5, 2),
	}

	for _, seq := range inputs {
		once := seq.Normalized()
		twice := once.Normalized()
		assert.True(t, Equal(once, twice), "%s", seq)

		x1, y1 := seq.ToVector()
		x2, y2 := once.ToVector()
		assert.Equal(t, x1, x2)
		assert.Equal(t, y1, y2)
		assert.LessOrEqual(t, once.Len(), seq.Len())
	}
}

func TestReversed(t *testing.T) {
	seq := New(grid.Top, grid.Right, grid.TopRight)
	rev := seq.Reversed()

	assert.Equal(t, "[BottomLeft Left Bottom]", rev.String())
	assert.Equal(t, seq.Len(), rev.Len())

	x, y := seq.ToVector()
	rx, ry := rev.ToVector()
	assert.Equal(t, -x, rx)
	assert.Equal(t, -y, ry)

	cx, cy := seq.Concat(rev).ToVector()
	assert.Equal(t, 0, cx)
	assert.Equal(t, 0, cy)

	assert.True(t, Equal(seq, rev.Reversed()))
	assert.True(t, Sequence{}.Reversed().IsEmpty())
}

func TestEach(t *testing.T) {
	seq := New(grid.Top, grid.Right, grid.Center)
	rotated := seq.Each(grid.Position.RotateLeft)

	assert.Equal(t, "[Left Top Center]", rotated.String())
	assert.Equal(t, "[Top Right Center]", seq.String(), "source is untouched")

	shifted := seq.EachWith(grid.Bottom, grid.Position.Add)
	assert.Equal(t, "[Center BottomRight Bottom]", shifted.String())
}

func TestEachZip(t *testing.T) {
	a := New(grid.Top, grid.Left, grid.TopRight)
	b := New(grid.Right, grid.Left, grid.BottomLeft)

	sum := a.EachZip(b, grid.Position.Add)
	assert.Equal(t, "[TopRight Left Center]", sum.String())

	longer := New(grid.Right, grid.Left, grid.BottomLeft, grid.Bottom, grid.Bottom)
	assert.True(t, Equal(sum, a.EachZip(longer, grid.Position.Add)), "excess steps of the longer input are ignored")
	assert.Equal(t, 3, longer.EachZip(a, grid.Position.Add).Len())

	assert.True(t, a.EachZip(Sequence{}, grid.Position.Add).IsEmpty())
}

func TestMutation(t *testing.T) {
	var seq Sequence
	seq.Push(grid.Top)
	seq.Push(grid.Left)
	assert.Equal(t, 2, seq.Len())

	seq.Update(func(i int, p *grid.Position) {
		*p = p.Neg()
	})
	assert.Equal(t, "[Bottom Right]", seq.String())

	p, ok := seq.Pop()
	require.True(t, ok)
	assert.Equal(t, grid.Right, p)

	seq.Clear()
	assert.True(t, seq.IsEmpty())
	_, ok = seq.Pop()
	assert.False(t, ok)
}

func TestUpdate_RejectsInvalidPosition(t *testing.T) {
	seq := New(grid.Top, grid.Left)

	assert.PanicsWithValue(t, "moves: Update stored invalid Position(12) at step 1", func() {
		seq.Update(func(i int, p *grid.Position) {
			if i == 1 {
				*p = grid.Position(12)
			}
		})
	})

	assert.Equal(t, "[Top Left]", seq.String(), "the invalid write is rolled back")
	x, y := seq.ToVector()
	assert.Equal(t, -1, x)
	assert.Equal(t, 1, y)
}

func TestSteps_ReturnsCopy(t *testing.T) {
	seq := New(grid.Top)
	steps := seq.Steps()
	steps[0] = grid.Bottom

	p, _ := seq.At(0)
	assert.Equal(t, grid.Top, p)
}

// ring is a fixed-capacity Steps implementation.
type ring struct {
	buf [4]grid.Position
	n   int
}

func (r *ring) Len() int { return r.n }

func (r *ring) At(i int) (grid.Position, bool) {
	if i < 0 || i >= r.n {
		return grid.Center, false
	}
	return r.buf[i], true
}

func TestSum_AcceptsAnySteps(t *testing.T) {
	r := &ring{buf: [4]grid.Position{grid.Right, grid.Right, grid.TopRight}, n: 3}
	x, y := Sum(r)
	assert.Equal(t, 3, x)
	assert.Equal(t, 1, y)

	x, y = Sum(New(grid.Left))
	assert.Equal(t, -1, x)
	assert.Equal(t, 0, y)
}
