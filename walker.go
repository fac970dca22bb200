package balance

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/balance/internal/logging"
	"github.com/aretw0/balance/pkg/grid"
	"github.com/aretw0/balance/pkg/moves"
)

// ErrOffGrid is returned by a strict Walker when a move would leave the grid.
var ErrOffGrid = errors.New("move leaves the grid")

// EdgePolicy decides what happens when a move crosses the grid boundary.
type EdgePolicy int

const (
	// EdgeSaturate stops at the boundary (grid.Position.Add).
	EdgeSaturate EdgePolicy = iota
	// EdgeWrap wraps around to the opposite side on each axis.
	EdgeWrap
	// EdgeStrict rejects the move with ErrOffGrid.
	EdgeStrict
)

// String returns the lower-case policy name.
func (e EdgePolicy) String() string {
	switch e {
	case EdgeSaturate:
		return "saturate"
	case EdgeWrap:
		return "wrap"
	case EdgeStrict:
		return "strict"
	default:
		return fmt.Sprintf("EdgePolicy(%d)", int(e))
	}
}

// StepError reports which step of a walk failed.
type StepError struct {
	Index int
	Move  grid.Position
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Move, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// StepEvent describes one applied move.
type StepEvent struct {
	Index   int           // position of the move in the walker's trail
	Move    grid.Position // the relative move requested
	From    grid.Position
	To      grid.Position
	Clipped bool // the edge policy altered the raw move
}

// Hooks are optional callbacks fired after each applied move.
type Hooks struct {
	OnStep func(StepEvent)
	OnClip func(StepEvent)
}

// Walker moves a cursor over the 3×3 grid, one relative move at a time,
// and remembers the moves it applied. It is not safe for concurrent use.
type Walker struct {
	start  grid.Position
	pos    grid.Position
	trail  moves.Sequence
	policy EdgePolicy
	hooks  Hooks
	logger *slog.Logger
	level  *slog.Level
}

// Option configures a Walker.
type Option func(*Walker)

// WithStart sets the initial cursor (default grid.Center).
func WithStart(p grid.Position) Option {
	return func(w *Walker) {
		w.start = p
	}
}

// WithEdgePolicy selects the boundary behavior (default EdgeSaturate).
func WithEdgePolicy(policy EdgePolicy) Option {
	return func(w *Walker) {
		w.policy = policy
	}
}

// WithHooks registers step callbacks.
func WithHooks(hooks Hooks) Option {
	return func(w *Walker) {
		w.hooks = hooks
	}
}

// WithLogger sets a structured logger. Steps are logged at Debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Walker) {
		w.logger = logger
	}
}

// WithLogLevel logs to Stderr at the given level. It is ignored when
// WithLogger supplies a logger.
func WithLogLevel(level slog.Level) Option {
	return func(w *Walker) {
		w.level = &level
	}
}

// New creates a Walker at its start position with an empty trail.
func New(opts ...Option) *Walker {
	w := &Walker{start: grid.Center}
	for _, opt := range opts {
		opt(w)
	}

	if w.logger == nil {
		if w.level != nil {
			w.logger = logging.New(nil, *w.level)
		} else {
			w.logger = logging.NewNop()
		}
	}
	w.logger = w.logger.With("policy", w.policy.String())
	w.pos = w.start

	return w
}

// Position returns the current cursor.
func (w *Walker) Position() grid.Position { return w.pos }

// Trail returns a copy of the moves applied so far.
func (w *Walker) Trail() moves.Sequence { return w.trail.Clone() }

// Displacement returns the unclamped sum of every applied move. It can
// exceed the grid when moves were saturated or wrapped.
func (w *Walker) Displacement() (x, y int) { return w.trail.ToVector() }

// Homeward returns the shortest sequence that cancels the displacement.
func (w *Walker) Homeward() moves.Sequence {
	return w.trail.Reversed().Normalized()
}

// Reset returns the cursor to its start and forgets the trail.
func (w *Walker) Reset() {
	w.pos = w.start
	w.trail.Clear()
}

// Step applies one relative move. Under EdgeStrict a move that would leave
// the grid returns an error wrapping ErrOffGrid and grid.ErrOutOfRange, and
// the walker is left unchanged.
func (w *Walker) Step(move grid.Position) error {
	from := w.pos
	rx, ry := from.X()+move.X(), from.Y()+move.Y()

	var to grid.Position
	switch w.policy {
	case EdgeWrap:
		to = wrapMove(from, move)
	case EdgeStrict:
		p, err := grid.FromVector(rx, ry)
		if err != nil {
			w.logger.Warn("move rejected", "move", move, "from", from, "error", err)
			return fmt.Errorf("%w: %w", ErrOffGrid, err)
		}
		to = p
	default:
		to = from.Add(move)
	}

	tx, ty := to.ToVector()
	event := StepEvent{
		Index:   w.trail.Len(),
		Move:    move,
		From:    from,
		To:      to,
		Clipped: tx != rx || ty != ry,
	}

	w.pos = to
	w.trail.Push(move)

	w.logger.Debug("step", "index", event.Index, "move", move, "from", from, "to", to)
	if w.hooks.OnStep != nil {
		w.hooks.OnStep(event)
	}
	if event.Clipped {
		w.logger.Debug("move clipped at edge", "index", event.Index, "raw_x", rx, "raw_y", ry, "to", to)
		if w.hooks.OnClip != nil {
			w.hooks.OnClip(event)
		}
	}
	return nil
}

// Walk applies every move of seq in order and stops at the first failure,
// reported as a *StepError. Moves before the failure stay applied.
func (w *Walker) Walk(seq moves.Steps) error {
	for i := 0; i < seq.Len(); i++ {
		move, _ := seq.At(i)
		if err := w.Step(move); err != nil {
			return &StepError{Index: i, Move: move, Err: err}
		}
	}
	return nil
}

func wrapMove(p, move grid.Position) grid.Position {
	switch move.X() {
	case 1:
		p = p.RightWrap()
	case -1:
		p = p.LeftWrap()
	}
	switch move.Y() {
	case 1:
		p = p.UpWrap()
	case -1:
		p = p.DownWrap()
	}
	return p
}
