package gridgraph_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/turnmaze/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid / Parse Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty, ragged or
// incompletely marked inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"NoRows", []string{}, gridgraph.ErrEmptyGrid},
		{"EmptyRow", []string{""}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", []string{"S.E", "##"}, gridgraph.ErrNonRectangular},
		{"MissingStart", []string{"..E"}, gridgraph.ErrMissingStart},
		{"MissingEnd", []string{"S.."}, gridgraph.ErrMissingEnd},
		{"MissingBoth", []string{"###"}, gridgraph.ErrMissingStart},
		{"DuplicateStart", []string{"S.S", "..E"}, gridgraph.ErrDuplicateStart},
		{"DuplicateEnd", []string{"S.E", "..E"}, gridgraph.ErrDuplicateEnd},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.rows, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%q) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestNewGrid_BadMarkers rejects option sets where two roles collide.
func TestNewGrid_BadMarkers(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Markers.End = opts.Markers.Start
	if _, err := gridgraph.NewGrid([]string{"S.S"}, opts); !errors.Is(err, gridgraph.ErrBadMarkers) {
		t.Fatalf("error = %v; want ErrBadMarkers", err)
	}
	if _, err := gridgraph.NewGrid([]string{"S.E"}, gridgraph.GridOptions{}); !errors.Is(err, gridgraph.ErrBadMarkers) {
		t.Fatalf("zero options error = %v; want ErrBadMarkers", err)
	}
}

// TestParse_Layout checks coordinates follow line/character order and that
// unknown characters are open floor.
func TestParse_Layout(t *testing.T) {
	g, err := gridgraph.ParseString("#.E#\r\n#S x\n\n\n", gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if g.Width != 4 || g.Height != 2 {
		t.Fatalf("size = %dx%d; want 4x2", g.Width, g.Height)
	}
	if want := (gridgraph.Coordinate{X: 1, Y: 1}); g.Start != want {
		t.Errorf("Start = %v; want %v", g.Start, want)
	}
	if want := (gridgraph.Coordinate{X: 2, Y: 0}); g.End != want {
		t.Errorf("End = %v; want %v", g.End, want)
	}

	walls := []gridgraph.Coordinate{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 1}}
	for _, c := range walls {
		if !g.Wall(c) || g.Open(c) {
			t.Errorf("cell %v should be a wall", c)
		}
	}
	open := []gridgraph.Coordinate{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 1}, g.Start, g.End}
	for _, c := range open {
		if !g.Open(c) || g.Wall(c) {
			t.Errorf("cell %v should be open", c)
		}
	}
}

// TestParse_BlankLineInside treats an interior blank line as a ragged row.
func TestParse_BlankLineInside(t *testing.T) {
	_, err := gridgraph.ParseString("S.\n\n.E\n", gridgraph.DefaultGridOptions())
	if !errors.Is(err, gridgraph.ErrNonRectangular) {
		t.Fatalf("error = %v; want ErrNonRectangular", err)
	}
}

// TestParse_CustomMarkers loads a grid drawn with non-default characters.
func TestParse_CustomMarkers(t *testing.T) {
	opts := gridgraph.GridOptions{Markers: gridgraph.Markers{Wall: 'X', Start: 'A', End: 'B', Open: ' '}}
	g, err := gridgraph.ParseString("XXXX\nXA#B\nXXXX", opts)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	// '#' is not the wall marker here, so it is open floor.
	if !g.Open(gridgraph.Coordinate{X: 2, Y: 1}) {
		t.Error("'#' should be open under custom markers")
	}
	if got, want := g.String(), "XXXX\nXA B\nXXXX\n"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

// TestLoad reads a grid from disk and wraps errors with the path.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.txt")
	if err := os.WriteFile(path, []byte("#####\n#S.E#\n#####\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	g, err := gridgraph.Load(path, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if g.String() != "#####\n#S.E#\n#####\n" {
		t.Errorf("round trip mismatch:\n%s", g.String())
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("#S#\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := gridgraph.Load(bad, gridgraph.DefaultGridOptions()); !errors.Is(err, gridgraph.ErrMissingEnd) {
		t.Errorf("Load(bad) error = %v; want ErrMissingEnd", err)
	}
	if _, err := gridgraph.Load(filepath.Join(dir, "absent.txt"), gridgraph.DefaultGridOptions()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(absent) error = %v; want os.ErrNotExist", err)
	}
}

//----------------------------------------------------------------------------//
// Bounds and adjacency
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.NewGrid([]string{"S.#", "#.E"}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
		c := gridgraph.Coordinate{X: xy[0], Y: xy[1]}
		if g.Open(c) || g.Wall(c) {
			t.Errorf("out-of-bounds %v must be neither open nor wall", c)
		}
	}
}

// TestWithEndpoints verifies endpoints move on a copy and must be open cells.
func TestWithEndpoints(t *testing.T) {
	g, err := gridgraph.NewGrid([]string{"S.#", "#.E"}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}

	mid := gridgraph.Coordinate{X: 1, Y: 1}
	moved, err := g.WithEndpoints(mid, mid)
	if err != nil {
		t.Fatalf("WithEndpoints error: %v", err)
	}
	if moved.Start != mid || moved.End != mid {
		t.Errorf("moved endpoints = %v,%v; want %v,%v", moved.Start, moved.End, mid, mid)
	}
	if g.Start != (gridgraph.Coordinate{X: 0, Y: 0}) || g.End != (gridgraph.Coordinate{X: 2, Y: 1}) {
		t.Errorf("source grid endpoints changed to %v,%v", g.Start, g.End)
	}
	if moved.String() == g.String() {
		t.Errorf("String() should reflect the moved endpoints")
	}

	bad := []gridgraph.Coordinate{{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 3, Y: 0}, {X: -1, Y: 1}}
	for _, c := range bad {
		if _, err := g.WithEndpoints(c, g.End); !errors.Is(err, gridgraph.ErrBadEndpoint) {
			t.Errorf("WithEndpoints(start=%v) err=%v; want ErrBadEndpoint", c, err)
		}
		if _, err := g.WithEndpoints(g.Start, c); !errors.Is(err, gridgraph.ErrBadEndpoint) {
			t.Errorf("WithEndpoints(end=%v) err=%v; want ErrBadEndpoint", c, err)
		}
	}
}

// TestStep verifies Step refuses walls and grid edges.
func TestStep(t *testing.T) {
	g, err := gridgraph.NewGrid([]string{"S.#", "#.E"}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	cases := []struct {
		from gridgraph.Coordinate
		dir  gridgraph.Direction
		to   gridgraph.Coordinate
		ok   bool
	}{
		{gridgraph.Coordinate{X: 0, Y: 0}, gridgraph.Right, gridgraph.Coordinate{X: 1, Y: 0}, true},
		{gridgraph.Coordinate{X: 0, Y: 0}, gridgraph.Up, gridgraph.Coordinate{X: 0, Y: -1}, false},
		{gridgraph.Coordinate{X: 0, Y: 0}, gridgraph.Down, gridgraph.Coordinate{X: 0, Y: 1}, false},
		{gridgraph.Coordinate{X: 1, Y: 0}, gridgraph.Right, gridgraph.Coordinate{X: 2, Y: 0}, false},
		{gridgraph.Coordinate{X: 1, Y: 1}, gridgraph.Right, gridgraph.Coordinate{X: 2, Y: 1}, true},
		{gridgraph.Coordinate{X: 1, Y: 1}, gridgraph.Left, gridgraph.Coordinate{X: 0, Y: 1}, false},
	}
	for _, tc := range cases {
		to, ok := g.Step(tc.from, tc.dir)
		if to != tc.to || ok != tc.ok {
			t.Errorf("Step(%v,%v) = (%v,%v); want (%v,%v)", tc.from, tc.dir, to, ok, tc.to, tc.ok)
		}
	}
}

// TestIndexCoordinate round-trips every cell through the row-major index.
func TestIndexCoordinate(t *testing.T) {
	g, err := gridgraph.NewGrid([]string{"S...", "...E", "...."}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	for i := 0; i < g.Cells(); i++ {
		if got := g.Index(g.Coordinate(i)); got != i {
			t.Errorf("Index(Coordinate(%d)) = %d", i, got)
		}
	}
}

//----------------------------------------------------------------------------//
// Direction Tests
//----------------------------------------------------------------------------//

// TestDirection_Turns checks the quarter-turn count for every pair.
func TestDirection_Turns(t *testing.T) {
	for _, from := range gridgraph.Directions() {
		for _, to := range gridgraph.Directions() {
			want := 1
			switch to {
			case from:
				want = 0
			case from.Opposite():
				want = 2
			}
			if got := from.Turns(to); got != want {
				t.Errorf("%v.Turns(%v) = %d; want %d", from, to, got, want)
			}
		}
	}
}

// TestDirection_Rotations checks rotation helpers and displacement vectors.
func TestDirection_Rotations(t *testing.T) {
	for _, d := range gridgraph.Directions() {
		if d.Clockwise().CounterClockwise() != d {
			t.Errorf("%v: clockwise then counter-clockwise is not identity", d)
		}
		if d.Clockwise().Clockwise() != d.Opposite() {
			t.Errorf("%v: two clockwise turns != opposite", d)
		}
		o, r := d.Offset(), d.Opposite().Offset()
		if o[0]+r[0] != 0 || o[1]+r[1] != 0 {
			t.Errorf("%v: offset %v does not cancel opposite %v", d, o, r)
		}
		if abs(o[0])+abs(o[1]) != 1 {
			t.Errorf("%v: offset %v is not a unit vector", d, o)
		}
	}
	if gridgraph.Up.Clockwise() != gridgraph.Right {
		t.Error("Up rotated clockwise should face Right")
	}
	if gridgraph.Direction(7).Valid() {
		t.Error("Direction(7) must be invalid")
	}
}

// TestParseDirection covers valid names, case folding and rejection.
func TestParseDirection(t *testing.T) {
	for _, d := range gridgraph.Directions() {
		got, err := gridgraph.ParseDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDirection(%q) = (%v,%v); want %v", d.String(), got, err, d)
		}
	}
	if got, err := gridgraph.ParseDirection(" RIGHT "); err != nil || got != gridgraph.Right {
		t.Errorf("ParseDirection(RIGHT) = (%v,%v)", got, err)
	}
	if _, err := gridgraph.ParseDirection("north"); err == nil {
		t.Error("ParseDirection(north) should fail")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
