package turnmaze_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turnmaze"
	"github.com/katalvlaran/turnmaze/dijkstra"
	"github.com/katalvlaran/turnmaze/gridgraph"
)

func TestSolveAndCountTiles(t *testing.T) {
	cases := []struct {
		path  string
		cost  int64
		tiles int
	}{
		{"testdata/sample.txt", 7036, 45},
		{"testdata/larger_sample.txt", 11048, 64},
		{"testdata/one_rotation.txt", 1003, 4},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			cost, err := turnmaze.Solve(tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.cost, cost)

			n, err := turnmaze.CountTiles(tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.tiles, n)
		})
	}
}

func TestSolveErrors(t *testing.T) {
	_, err := turnmaze.Solve("testdata/walled_off.txt")
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
	_, err = turnmaze.CountTiles("testdata/walled_off.txt")
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)

	_, err = turnmaze.Solve("testdata/no_end.txt")
	assert.ErrorIs(t, err, gridgraph.ErrMissingEnd)

	_, err = turnmaze.CountTiles("testdata/does_not_exist.txt")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSolverOptions(t *testing.T) {
	opts := gridgraph.GridOptions{Markers: gridgraph.Markers{Wall: 'X', Start: 'A', End: 'Z', Open: ' '}}
	s := turnmaze.NewSolver(opts, dijkstra.WithTurnPenalty(5))

	cost, err := s.Solve(strings.NewReader("XXXXX\nX  ZX\nXA  X\nXXXXX\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(8), cost)

	n, err := s.CountTiles(strings.NewReader("XXXXX\nX  ZX\nXA  X\nXXXXX\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestAnalyze(t *testing.T) {
	f, err := os.Open("testdata/sample.txt")
	require.NoError(t, err)
	defer f.Close()

	rep, err := turnmaze.Default().Analyze(f)
	require.NoError(t, err)
	assert.Equal(t, int64(7036), rep.Cost)
	assert.Equal(t, rep.Cost, rep.Path.Cost)
	assert.Equal(t, 45, rep.Tiles.Count())
	assert.Equal(t, 15, rep.Grid.Width)
	for _, c := range rep.Path.Coordinates() {
		assert.True(t, rep.Tiles.Contains(c))
	}
}
