// Package dijkstra finds minimum-cost walks through a grid maze where every
// step and every change of direction has a price.
//
// Overview:
//
//   - The search space is {cell × facing}: the same cell reached while facing
//     differently is a different state, because future turn penalties differ.
//   - MinCost returns the cheapest cost from the start (facing Right by default)
//     to the end, stopping at the first end state popped from the min-heap.
//   - ShortestPath additionally reconstructs one such walk.
//   - BestTiles / CountTiles run a forward and a backward search and keep every
//     cell whose state satisfies fwd(s) + bwd(s) == minimum, i.e. the union of
//     all optimal paths, without enumerating them.
//
// Cost model:
//
//   - Stepping forward costs StepCost (default 1).
//   - Each 90° direction change adds TurnPenalty (default 1000).
//   - A reversal is one transition costing StepCost + 2×TurnPenalty under
//     ReversalDoublePenalty (default), or is not allowed under ReversalForbidden.
//
// Performance and complexity:
//
//   - Time:  O(S log S), S = 4·W·H states, at most 4 transitions each.
//   - Space: O(S) dense arrays indexed by cell*4+facing; the heap grows only on
//     strict improvements (lazy decrease-key).
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:        the grid pointer is nil.
//   - ErrUnreachable:    no valid walk joins start and end (or none within MaxCost).
//   - ErrBadTurnPenalty: TurnPenalty < 0.
//   - ErrBadStepCost:    StepCost <= 0.
//   - ErrBadFacing:      Facing is not a defined Direction.
//   - ErrBadMaxCost:     MaxCost < 0.
//   - ErrBadReversal:    Reversal is not a defined ReversalMode.
//
// Thread safety:
//
//   - Every call owns its frontier and cost arrays; a *gridgraph.Grid is never
//     mutated, so concurrent calls on the same grid are safe.
//
// Example:
//
//	g, _ := gridgraph.ParseString(maze, gridgraph.DefaultGridOptions())
//	cost, err := dijkstra.MinCost(g, dijkstra.WithTurnPenalty(1000))
//	if errors.Is(err, dijkstra.ErrUnreachable) {
//	    // no path
//	}
package dijkstra
