package gridgraph

import (
	"fmt"
	"strings"
)

// Coordinate is a (column, row) pair. Row 0 is the top line of the input,
// column 0 its first character.
type Coordinate struct {
	X, Y int
}

// Add returns c displaced by the unit vector of d.
func (c Coordinate) Add(d Direction) Coordinate {
	off := d.Offset()
	return Coordinate{X: c.X + off[0], Y: c.Y + off[1]}
}

// String formats the coordinate as "x,y", the same ID scheme used for grid vertices.
func (c Coordinate) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Direction is a facing on the grid. The four values are ordered clockwise
// so that quarter turns are plain modular arithmetic.
type Direction uint8

const (
	// Up faces row 0.
	Up Direction = iota
	// Right faces increasing columns.
	Right
	// Down faces increasing rows.
	Down
	// Left faces column 0.
	Left
)

// NumDirections is the size of the Direction enumeration.
const NumDirections = 4

// offsets maps each Direction to its unit displacement (dx, dy).
var offsets = [NumDirections][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

var directionNames = [NumDirections]string{"up", "right", "down", "left"}

// Directions lists every valid Direction in clockwise order.
func Directions() [NumDirections]Direction {
	return [NumDirections]Direction{Up, Right, Down, Left}
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool { return d < NumDirections }

// Offset returns the unit displacement (dx, dy) of d.
func (d Direction) Offset() [2]int { return offsets[d%NumDirections] }

// Clockwise returns d rotated 90° to the right.
func (d Direction) Clockwise() Direction { return (d + 1) % NumDirections }

// CounterClockwise returns d rotated 90° to the left.
func (d Direction) CounterClockwise() Direction { return (d + NumDirections - 1) % NumDirections }

// Opposite returns d rotated 180°.
func (d Direction) Opposite() Direction { return (d + 2) % NumDirections }

// Turns returns the number of quarter turns (0, 1 or 2) needed to face to from d.
func (d Direction) Turns(to Direction) int {
	diff := (int(to) - int(d) + NumDirections) % NumDirections
	if diff == 3 {
		return 1
	}
	return diff
}

// String returns the lower-case name of d.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// ParseDirection maps a case-insensitive name ("up", "right", "down", "left")
// to its Direction.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("gridgraph: unknown direction %q", s)
}

// Markers selects the characters that encode each cell role.
// Any character that is not Wall, Start or End is an open cell; Open is only
// used when rendering a grid back to text.
type Markers struct {
	Wall  rune
	Start rune
	End   rune
	Open  rune
}

// Validate reports ErrBadMarkers when two roles share a character.
func (m Markers) Validate() error {
	if m.Wall == m.Start || m.Wall == m.End || m.Start == m.End {
		return ErrBadMarkers
	}
	if m.Open == m.Wall || m.Open == m.Start || m.Open == m.End {
		return ErrBadMarkers
	}
	return nil
}

// GridOptions contains tunable parameters for grid loading.
type GridOptions struct {
	Markers Markers
}

// DefaultGridOptions returns GridOptions with the conventional markers:
// '#' wall, 'S' start, 'E' end, '.' open floor.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Markers: Markers{Wall: '#', Start: 'S', End: 'E', Open: '.'},
	}
}

// Grid is a bounded maze of open and wall cells with one start and one end.
// It is immutable once built and safe for concurrent readers. The exported
// fields are read-only: never assign Start or End on a built Grid; use
// WithEndpoints to derive a grid with other endpoints.
type Grid struct {
	Width, Height int
	Start, End    Coordinate
	walls         []bool // row-major, len Width*Height
	markers       Markers
}
