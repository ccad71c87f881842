package dijkstra

import (
	"github.com/katalvlaran/turnmaze/gridgraph"
)

// BestTiles returns every cell that lies on at least one minimum-cost path
// from (g.Start, Options.Facing) to g.End, together with that minimum cost.
//
// Behavior:
//  1. Forward search from the start state, finalizing every state whose
//     cost-from-start does not exceed the minimum (the bound tightens as soon
//     as the first end state is popped).
//  2. Backward search over reversed transitions, seeded with all four end
//     states at cost zero, bounded by the same minimum.
//  3. A state s is on an optimal path iff fwd(s) + bwd(s) == minimum; the
//     union of the cells of such states is the result.
//
// Ties are unioned, never resolved to a single path. The result always
// contains Start and End. ErrUnreachable is returned when no path exists.
//
// Complexity: O(S log S) time, O(S) memory, with S = 4·W·H.
func BestTiles(g *gridgraph.Grid, opts ...Option) (*Tiles, error) {
	cfg, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}

	fwd := newRunner(g, cfg, forward, false)
	fwd.seed(g.Start, cfg.Facing)
	goal := fwd.process(cfg.MaxCost, false)
	fwd.log("best-tiles")
	if goal < 0 {
		return nil, ErrUnreachable
	}
	best := fwd.dist[goal]

	bwd := newRunner(g, cfg, backward, false)
	for _, d := range gridgraph.Directions() {
		bwd.seed(g.End, d)
	}
	bwd.process(best, false)
	bwd.log("best-tiles")

	t := &Tiles{
		Cost: best,
		grid: g,
		mask: make([]bool, g.Cells()),
	}
	for i := range fwd.dist {
		f, b := fwd.dist[i], bwd.dist[i]
		if f == inf || b == inf || f+b != best {
			continue
		}
		t.mask[i/gridgraph.NumDirections] = true
	}
	for cell, on := range t.mask {
		if on {
			t.Coords = append(t.Coords, g.Coordinate(cell))
		}
	}

	return t, nil
}

// CountTiles returns the number of distinct cells on some minimum-cost path.
// The count is undefined, and an error returned, when the end is unreachable.
func CountTiles(g *gridgraph.Grid, opts ...Option) (int, error) {
	t, err := BestTiles(g, opts...)
	if err != nil {
		return 0, err
	}
	return t.Count(), nil
}
