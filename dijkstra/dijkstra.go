// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// oriented state space of a grid maze.
//
// A state is a (cell, facing) pair. From every state the walker may turn to
// any direction and step one cell; the transition costs StepCost plus
// TurnPenalty per quarter turn, so a reversal costs twice the penalty.
// States are packed into a dense index cell*4+facing, which bounds every
// cost array by Width×Height×4.
//
// Complexity:
//
//   - Time:  O(S log S) where S = 4·W·H states and at most 4·S transitions.
//   - Space: O(S) for distances, finalized flags and optional predecessors.
//
// Notes on implementation choices:
//
//   - A cheap O(W·H) connectivity check fails fast before any state array is allocated.
//   - We stop exploring once the minimum cost in the heap exceeds the current bound.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/turnmaze/gridgraph"
)

const inf = math.MaxInt64

// MinCost returns the minimum total cost of walking from g.Start, facing
// Options.Facing, to g.End.
//
// Returns:
//
//   - cost: the minimal cost; 0 only when Start == End.
//   - err:  ErrNilGrid, an option validation error, or ErrUnreachable.
//
// The search returns as soon as any state on the end cell is popped: with
// non-negative weights the first such pop is optimal.
//
// Complexity:
//
//   - Time:  O(S log S)
//   - Space: O(S)
func MinCost(g *gridgraph.Grid, opts ...Option) (int64, error) {
	cfg, err := prepare(g, opts)
	if err != nil {
		return 0, err
	}

	r := newRunner(g, cfg, forward, false)
	r.seed(g.Start, cfg.Facing)
	goal := r.process(cfg.MaxCost, true)
	r.log("min-cost")
	if goal < 0 {
		return 0, ErrUnreachable
	}

	return r.dist[goal], nil
}

// ShortestPath returns one minimum-cost path with its cost. When several
// paths tie, which one is returned is unspecified but deterministic.
//
// Complexity:
//
//   - Time:  O(S log S)
//   - Space: O(S) including the predecessor array.
func ShortestPath(g *gridgraph.Grid, opts ...Option) (*Path, error) {
	cfg, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}

	r := newRunner(g, cfg, forward, true)
	r.seed(g.Start, cfg.Facing)
	goal := r.process(cfg.MaxCost, true)
	r.log("shortest-path")
	if goal < 0 {
		return nil, ErrUnreachable
	}

	// Walk predecessors back to the seed, then reverse.
	var states []State
	for at := int32(goal); at >= 0; at = r.prev[at] {
		states = append(states, r.state(int(at)))
	}
	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
	}

	return &Path{Cost: r.dist[goal], States: states}, nil
}

// prepare applies opts over DefaultOptions and validates inputs in order:
// nil grid, option values, then plain connectivity between Start and End.
func prepare(g *gridgraph.Grid, opts []Option) (Options, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if g == nil {
		return cfg, ErrNilGrid
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if err := cfg.checkRange(g.Cells() * gridgraph.NumDirections); err != nil {
		return cfg, err
	}
	if !g.Connected(g.Start, g.End) {
		return cfg, ErrUnreachable
	}

	return cfg, nil
}

// orientation selects which way edges are followed.
type orientation int

const (
	// forward follows transitions from a state to its successors.
	forward orientation = iota
	// backward follows transitions from a state to its predecessors,
	// computing cost-to-go instead of cost-from-start.
	backward
)

// runner holds the mutable state for a single search. It is created fresh
// per call and never shared.
type runner struct {
	g       *gridgraph.Grid
	options Options
	dir     orientation
	dist    []int64 // state index → best known cost
	done    []bool  // state index → cost finalized
	prev    []int32 // state index → predecessor state index, -1 at seeds; nil unless requested
	pq      statePQ
	pops    int
	pushes  int
}

// newRunner allocates per-state arrays sized Width×Height×4 and an empty heap.
func newRunner(g *gridgraph.Grid, cfg Options, dir orientation, withPrev bool) *runner {
	n := g.Cells() * gridgraph.NumDirections
	r := &runner{
		g:       g,
		options: cfg,
		dir:     dir,
		dist:    make([]int64, n),
		done:    make([]bool, n),
		pq:      make(statePQ, 0, g.Cells()),
	}
	for i := range r.dist {
		r.dist[i] = inf
	}
	if withPrev {
		r.prev = make([]int32, n)
		for i := range r.prev {
			r.prev[i] = -1
		}
	}
	heap.Init(&r.pq)

	return r
}

// index packs a state into its dense slot.
func (r *runner) index(c gridgraph.Coordinate, d gridgraph.Direction) int {
	return r.g.Index(c)*gridgraph.NumDirections + int(d)
}

// state unpacks a dense slot.
func (r *runner) state(i int) State {
	return State{
		Pos:    r.g.Coordinate(i / gridgraph.NumDirections),
		Facing: gridgraph.Direction(i % gridgraph.NumDirections),
	}
}

// seed starts the search from (c, d) at cost zero.
func (r *runner) seed(c gridgraph.Coordinate, d gridgraph.Direction) {
	i := r.index(c, d)
	r.dist[i] = 0
	r.push(i, 0)
}

func (r *runner) push(i int, d int64) {
	r.pushes++
	heap.Push(&r.pq, stateItem{idx: int32(i), dist: d})
}

// process is the core loop. It repeatedly extracts the cheapest state and
// relaxes its transitions until the heap is empty or the cheapest entry
// exceeds bound.
//
// With stopAtEnd set, the first finalized state on the end cell is returned.
// Otherwise every state within bound is finalized; the bound tightens to the
// cost of the first end state popped by a forward run, and -1 is returned
// unless an end state was finalized.
func (r *runner) process(bound int64, stopAtEnd bool) int {
	goal := -1
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest entry.
		item := heap.Pop(&r.pq).(stateItem)
		u := int(item.idx)
		r.pops++

		// 2) Skip stale entries for states already finalized.
		if r.done[u] {
			continue
		}

		// 3) Nothing cheaper remains within bound.
		if item.dist > bound {
			break
		}

		// 4) Finalize u.
		r.done[u] = true

		// 5) Reaching the end cell going forward.
		if r.dir == forward && r.g.Coordinate(u/gridgraph.NumDirections) == r.g.End {
			if goal < 0 {
				goal = u
				if item.dist < bound {
					bound = item.dist
				}
			}
			if stopAtEnd {
				return goal
			}
		}

		// 6) Relax transitions out of (or, backward, into) u.
		r.relax(u, bound)
	}

	return goal
}

// relax attempts to improve every neighbour state of u.
//
// Forward, the neighbours of (c, d) are (c+nd, nd) for each direction nd whose
// cell is open. Backward, the neighbours of (c, nd) are (c-nd, d) for each d:
// the states from which a turn to nd and one step lead into (c, nd).
func (r *runner) relax(u int, bound int64) {
	s := r.state(u)
	base := r.dist[u]

	if r.dir == forward {
		for _, nd := range gridgraph.Directions() {
			w, ok := r.options.weight(s.Facing, nd)
			if !ok {
				continue
			}
			next, open := r.g.Step(s.Pos, nd)
			if !open {
				continue
			}
			r.update(u, r.index(next, nd), base+w, bound)
		}
		return
	}

	from, open := r.g.Step(s.Pos, s.Facing.Opposite())
	if !open {
		return
	}
	for _, d := range gridgraph.Directions() {
		w, ok := r.options.weight(d, s.Facing)
		if !ok {
			continue
		}
		r.update(u, r.index(from, d), base+w, bound)
	}
}

// update records newDist for v when it is strictly better and within bound.
func (r *runner) update(u, v int, newDist, bound int64) {
	if r.done[v] || newDist > bound || newDist >= r.dist[v] {
		return
	}
	r.dist[v] = newDist
	if r.prev != nil {
		r.prev[v] = int32(u)
	}
	r.push(v, newDist)
}

// log emits search statistics at debug level.
func (r *runner) log(op string) {
	dir := "forward"
	if r.dir == backward {
		dir = "backward"
	}
	r.options.Logger.Debug("dijkstra: search finished",
		"op", op,
		"orientation", dir,
		"states", len(r.dist),
		"pops", r.pops,
		"pushes", r.pushes,
	)
}

// stateItem is a heap entry: a dense state index and its cost when pushed.
type stateItem struct {
	idx  int32
	dist int64
}

// statePQ is a min-heap of stateItem ordered by dist ascending.
// Outdated entries stay in the heap and are skipped when popped.
type statePQ []stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *statePQ) Push(x any) { *pq = append(*pq, x.(stateItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *statePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
