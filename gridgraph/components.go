package gridgraph

// Reachable marks every open cell connected to from through orthogonal moves,
// ignoring facing and turn costs. The result is indexed row-major; it is all
// false when from is not open.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for the visited flags and queue.
func (g *Grid) Reachable(from Coordinate) []bool {
	seen := make([]bool, g.Cells())
	if !g.Open(from) {
		return seen
	}

	i0 := g.Index(from)
	seen[i0] = true
	queue := []int{i0}
	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		for _, d := range Directions() {
			v, ok := g.Step(u, d)
			if !ok {
				continue
			}
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return seen
}

// Connected reports whether b can be reached from a through open cells.
func (g *Grid) Connected(a, b Coordinate) bool {
	if !g.Open(b) {
		return false
	}
	return g.Reachable(a)[g.Index(b)]
}
