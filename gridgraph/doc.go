// Package gridgraph treats a textual maze as a bounded grid graph whose
// vertices are open cells and whose edges join orthogonal neighbours.
//
// What:
//
//   - Grid wraps a rectangular maze with exactly one start and one end cell.
//   - Coordinate is a (column, row) value; Direction is the closed set
//     Up, Right, Down, Left with a data-driven displacement table.
//   - Reachable/Connected answer plain connectivity, ignoring turn costs.
//
// Input format:
//
//	#####
//	#S.E#
//	#####
//
// One line per row, one character per cell. With DefaultGridOptions '#' is a
// wall, 'S' the start, 'E' the end, and any other character open floor.
//
// Complexity:
//
//   - NewGrid / Parse: O(W×H) time and memory.
//   - InBounds, Open, Step: O(1).
//   - Reachable:       O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMissingStart / ErrMissingEnd: a marker is absent; the start and end
//     are never defaulted to (0,0).
//   - ErrDuplicateStart / ErrDuplicateEnd: a marker occurs more than once.
//   - ErrBadMarkers: two roles share a marker character.
package gridgraph
