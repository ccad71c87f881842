package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// NewGrid constructs a Grid from rows of marker characters.
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrNonRectangular if any row length differs, and ErrMissingStart,
// ErrMissingEnd, ErrDuplicateStart or ErrDuplicateEnd when the start and end
// markers do not occur exactly once.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(rows []string, opts GridOptions) (*Grid, error) {
	m := opts.Markers
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	w := len([]rune(rows[0]))
	h := len(rows)
	g := &Grid{
		Width:   w,
		Height:  h,
		walls:   make([]bool, w*h),
		markers: m,
	}

	var haveStart, haveEnd bool
	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(cells), w)
		}
		for x, ch := range cells {
			switch ch {
			case m.Wall:
				g.walls[g.index(x, y)] = true
			case m.Start:
				if haveStart {
					return nil, fmt.Errorf("%w: at %d,%d and %s", ErrDuplicateStart, x, y, g.Start)
				}
				g.Start, haveStart = Coordinate{X: x, Y: y}, true
			case m.End:
				if haveEnd {
					return nil, fmt.Errorf("%w: at %d,%d and %s", ErrDuplicateEnd, x, y, g.End)
				}
				g.End, haveEnd = Coordinate{X: x, Y: y}, true
			}
		}
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveEnd {
		return nil, ErrMissingEnd
	}

	return g, nil
}

// Parse reads one grid row per line from r. Carriage returns are stripped and
// trailing blank lines are ignored; a blank line inside the grid is a row of
// length zero and fails the rectangularity check.
func Parse(r io.Reader, opts GridOptions) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read input: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return NewGrid(rows, opts)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, opts GridOptions) (*Grid, error) {
	return Parse(strings.NewReader(s), opts)
}

// Load parses the grid stored in the file at path.
func Load(path string, opts GridOptions) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// WithEndpoints returns a grid sharing g's walls and markers with start and
// end moved. Both must be open cells inside the grid; they may coincide.
// g itself is not modified.
func (g *Grid) WithEndpoints(start, end Coordinate) (*Grid, error) {
	for _, c := range [...]Coordinate{start, end} {
		if !g.Open(c) {
			return nil, fmt.Errorf("%w: %s", ErrBadEndpoint, c)
		}
	}
	out := *g
	out.Start, out.End = start, end
	return &out, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Open reports whether c is inside the grid and not a wall.
// Out-of-bounds coordinates are never open.
func (g *Grid) Open(c Coordinate) bool {
	return g.InBounds(c.X, c.Y) && !g.walls[g.index(c.X, c.Y)]
}

// Wall reports whether c is inside the grid and holds a wall.
func (g *Grid) Wall(c Coordinate) bool {
	return g.InBounds(c.X, c.Y) && g.walls[g.index(c.X, c.Y)]
}

// Step returns the neighbour of c in direction d and whether it can be
// entered. The neighbour is only meaningful when ok is true.
func (g *Grid) Step(c Coordinate, d Direction) (next Coordinate, ok bool) {
	next = c.Add(d)
	return next, g.Open(next)
}

// Cells returns Width*Height.
func (g *Grid) Cells() int {
	return g.Width * g.Height
}

// Index maps an in-bounds coordinate to its row-major index: Y*Width + X.
// Complexity: O(1).
func (g *Grid) Index(c Coordinate) int {
	return g.index(c.X, c.Y)
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to a Coordinate.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{X: idx % g.Width, Y: idx / g.Width}
}

// Markers returns the markers the grid was loaded with.
func (g *Grid) Markers() Markers {
	return g.markers
}

// String renders the grid back to text using its markers, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Coordinate{X: x, Y: y}
			switch {
			case c == g.Start:
				b.WriteRune(g.markers.Start)
			case c == g.End:
				b.WriteRune(g.markers.End)
			case g.walls[g.index(x, y)]:
				b.WriteRune(g.markers.Wall)
			default:
				b.WriteRune(g.markers.Open)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
