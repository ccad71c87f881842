package turnmaze

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/turnmaze/dijkstra"
	"github.com/katalvlaran/turnmaze/gridgraph"
)

// Solver parses mazes with a fixed set of markers and scores them with a
// fixed cost model. A Solver holds no per-call state and may be shared.
type Solver struct {
	grid   gridgraph.GridOptions
	search []dijkstra.Option
}

// NewSolver returns a Solver using gridOpts for parsing and opts for scoring.
func NewSolver(gridOpts gridgraph.GridOptions, opts ...dijkstra.Option) *Solver {
	return &Solver{grid: gridOpts, search: opts}
}

// Default returns a Solver with the conventional markers and cost model.
func Default() *Solver {
	return NewSolver(gridgraph.DefaultGridOptions())
}

// Solve returns the lowest score for the maze read from r.
func (s *Solver) Solve(r io.Reader) (int64, error) {
	g, err := gridgraph.Parse(r, s.grid)
	if err != nil {
		return 0, err
	}
	return dijkstra.MinCost(g, s.search...)
}

// CountTiles returns the number of cells on some lowest-score walk through
// the maze read from r.
func (s *Solver) CountTiles(r io.Reader) (int, error) {
	g, err := gridgraph.Parse(r, s.grid)
	if err != nil {
		return 0, err
	}
	return dijkstra.CountTiles(g, s.search...)
}

// SolveFile is Solve over the file at path.
func (s *Solver) SolveFile(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("turnmaze: %w", err)
	}
	defer f.Close()
	return s.Solve(f)
}

// CountTilesFile is CountTiles over the file at path.
func (s *Solver) CountTilesFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("turnmaze: %w", err)
	}
	defer f.Close()
	return s.CountTiles(f)
}

// Report bundles everything known about one solved maze.
type Report struct {
	Grid  *gridgraph.Grid
	Cost  int64
	Tiles *dijkstra.Tiles
	Path  *dijkstra.Path
}

// Analyze parses r once and computes the lowest score, the best tiles and
// one representative path.
func (s *Solver) Analyze(r io.Reader) (*Report, error) {
	g, err := gridgraph.Parse(r, s.grid)
	if err != nil {
		return nil, err
	}
	tiles, err := dijkstra.BestTiles(g, s.search...)
	if err != nil {
		return nil, err
	}
	path, err := dijkstra.ShortestPath(g, s.search...)
	if err != nil {
		return nil, err
	}
	return &Report{Grid: g, Cost: tiles.Cost, Tiles: tiles, Path: path}, nil
}

// Solve returns the lowest score for the maze stored at path using the
// default markers and cost model.
func Solve(path string) (int64, error) {
	return Default().SolveFile(path)
}

// CountTiles returns the number of cells on some lowest-score walk through
// the maze stored at path, using the default markers and cost model.
func CountTiles(path string) (int, error) {
	return Default().CountTilesFile(path)
}
