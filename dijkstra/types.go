// Package dijkstra defines core types and configuration options for the
// oriented shortest-path search over (cell, facing) states of a grid maze.
package dijkstra

import (
	"errors"
	"log/slog"
	"math"

	"github.com/katalvlaran/turnmaze/gridgraph"
)

// Sentinel errors returned by the solver.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to the solver.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrUnreachable indicates that no sequence of valid transitions connects
	// the start to the end (within MaxCost, when one is set). It is never
	// reported as a zero cost.
	ErrUnreachable = errors.New("dijkstra: end is unreachable from start")

	// ErrBadTurnPenalty indicates a negative turn penalty.
	ErrBadTurnPenalty = errors.New("dijkstra: TurnPenalty must be non-negative")

	// ErrBadStepCost indicates a step cost of zero or less.
	ErrBadStepCost = errors.New("dijkstra: StepCost must be positive")

	// ErrBadFacing indicates an initial facing outside the Direction enumeration.
	ErrBadFacing = errors.New("dijkstra: Facing must be a valid direction")

	// ErrBadMaxCost indicates a negative exploration cap.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadReversal indicates an unknown ReversalMode.
	ErrBadReversal = errors.New("dijkstra: unknown reversal mode")

	// ErrCostOverflow indicates that StepCost and TurnPenalty are large
	// enough for a path cost on the given grid to overflow int64.
	ErrCostOverflow = errors.New("dijkstra: step cost and turn penalty too large for grid")
)

// Default cost model.
const (
	DefaultTurnPenalty int64 = 1000
	DefaultStepCost    int64 = 1
)

// ReversalMode controls whether a 180° turn may be taken as one transition.
//
// ReversalDoublePenalty – turning around and stepping is a single transition
// costing StepCost + 2×TurnPenalty.
// ReversalForbidden     – 180° transitions are never generated, so the search
// never steps straight back onto the cell it came from.
type ReversalMode int

const (
	// ReversalDoublePenalty allows reversal at twice the turn penalty.
	ReversalDoublePenalty ReversalMode = iota

	// ReversalForbidden drops reversal transitions.
	ReversalForbidden
)

// String returns a short name for the mode.
func (m ReversalMode) String() string {
	switch m {
	case ReversalDoublePenalty:
		return "double-penalty"
	case ReversalForbidden:
		return "forbidden"
	}
	return "unknown"
}

// State is a position together with the direction the walker faces.
// The same cell reached facing differently is a distinct state.
type State struct {
	Pos    gridgraph.Coordinate
	Facing gridgraph.Direction
}

// Options configures the solver.
//
// TurnPenalty – cost of each 90° direction change (≥ 0). Default 1000.
// StepCost    – cost of each forward step (> 0). Default 1.
// Facing      – direction faced on the start cell. Default Right.
// Reversal    – how 180° turns are modelled. Default ReversalDoublePenalty.
// MaxCost     – states costlier than this are not explored (≥ 0).
//
//	Default math.MaxInt64 (no cap).
//
// Logger      – receives debug-level search statistics. Default discards.
type Options struct {
	TurnPenalty int64
	StepCost    int64
	Facing      gridgraph.Direction
	Reversal    ReversalMode
	MaxCost     int64
	Logger      *slog.Logger
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithTurnPenalty sets the cost of a single 90° turn.
func WithTurnPenalty(p int64) Option {
	return func(o *Options) {
		o.TurnPenalty = p
	}
}

// WithStepCost sets the cost of one forward step.
func WithStepCost(c int64) Option {
	return func(o *Options) {
		o.StepCost = c
	}
}

// WithFacing sets the direction faced on the start cell.
func WithFacing(d gridgraph.Direction) Option {
	return func(o *Options) {
		o.Facing = d
	}
}

// WithReversal selects how 180° turns are modelled.
func WithReversal(m ReversalMode) Option {
	return func(o *Options) {
		o.Reversal = m
	}
}

// WithMaxCost caps exploration: states whose cost would exceed max are
// never expanded, and an end beyond the cap is reported as ErrUnreachable.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		o.MaxCost = max
	}
}

// WithLogger routes search statistics to l at debug level.
// A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns an Options struct initialized with the default cost
// model. Use this as a starting point for further functional-options overrides.
//
// Defaults:
//   - TurnPenalty: 1000.
//   - StepCost:    1.
//   - Facing:      gridgraph.Right.
//   - Reversal:    ReversalDoublePenalty.
//   - MaxCost:     math.MaxInt64 (no cap).
//   - Logger:      discards everything.
func DefaultOptions() Options {
	return Options{
		TurnPenalty: DefaultTurnPenalty,
		StepCost:    DefaultStepCost,
		Facing:      gridgraph.Right,
		Reversal:    ReversalDoublePenalty,
		MaxCost:     math.MaxInt64,
		Logger:      slog.New(slog.DiscardHandler),
	}
}

// Validate checks every field and returns the first sentinel error found.
func (o Options) Validate() error {
	switch {
	case o.TurnPenalty < 0:
		return ErrBadTurnPenalty
	case o.StepCost <= 0:
		return ErrBadStepCost
	case !o.Facing.Valid():
		return ErrBadFacing
	case o.MaxCost < 0:
		return ErrBadMaxCost
	case o.Reversal != ReversalDoublePenalty && o.Reversal != ReversalForbidden:
		return ErrBadReversal
	}
	return nil
}

// checkRange reports ErrCostOverflow unless every sum the search forms on a
// grid with the given number of states fits in int64. A simple path visits
// each state at most once, and tile detection adds a forward and a backward
// distance, so the bound is 2 * states * (StepCost + 2*TurnPenalty).
func (o Options) checkRange(states int) error {
	if o.TurnPenalty > (math.MaxInt64-o.StepCost)/2 {
		return ErrCostOverflow
	}
	maxEdge := o.StepCost + 2*o.TurnPenalty
	if maxEdge > math.MaxInt64/(2*int64(states)) {
		return ErrCostOverflow
	}
	return nil
}

// weight returns the cost of turning from d to nd and stepping once, and
// whether that transition exists under the reversal mode.
func (o Options) weight(d, nd gridgraph.Direction) (int64, bool) {
	turns := d.Turns(nd)
	if turns == 2 && o.Reversal == ReversalForbidden {
		return 0, false
	}
	return o.StepCost + int64(turns)*o.TurnPenalty, true
}

// Path is one minimum-cost walk from the start state to an end state.
type Path struct {
	Cost   int64
	States []State // start state first, end state last
}

// Coordinates returns the cells visited by the path in order.
func (p *Path) Coordinates() []gridgraph.Coordinate {
	out := make([]gridgraph.Coordinate, len(p.States))
	for i, s := range p.States {
		out[i] = s.Pos
	}
	return out
}

// Turns returns the number of 90° rotations along the path; a reversal counts two.
func (p *Path) Turns() int {
	n := 0
	for i := 1; i < len(p.States); i++ {
		n += p.States[i-1].Facing.Turns(p.States[i].Facing)
	}
	return n
}

// Tiles is the set of cells lying on at least one minimum-cost path.
type Tiles struct {
	Cost   int64                  // the global minimum cost
	Coords []gridgraph.Coordinate // row-major order
	grid   *gridgraph.Grid
	mask   []bool
}

// Count returns the number of distinct cells on some optimal path.
func (t *Tiles) Count() int {
	return len(t.Coords)
}

// Contains reports whether c lies on some optimal path. A nil set contains
// nothing.
func (t *Tiles) Contains(c gridgraph.Coordinate) bool {
	if t == nil || t.grid == nil {
		return false
	}
	return t.grid.InBounds(c.X, c.Y) && t.mask[t.grid.Index(c)]
}
