package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/turnmaze/dijkstra"
	"github.com/katalvlaran/turnmaze/gridgraph"
)

// TileRune marks a best tile on the terminal.
const TileRune = 'O'

var (
	wallStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	openStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	tileStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	startStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	endStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
)

// Draw paints g onto screen, one terminal cell per maze cell, starting at the
// top-left corner. Cells outside the screen are clipped. Draw does not call
// Show.
func Draw(screen tcell.Screen, g *gridgraph.Grid, tiles *dijkstra.Tiles) error {
	if g == nil {
		return dijkstra.ErrNilGrid
	}
	m := g.Markers()
	w, h := screen.Size()
	screen.Clear()
	for y := 0; y < g.Height && y < h; y++ {
		for x := 0; x < g.Width && x < w; x++ {
			c := gridgraph.Coordinate{X: x, Y: y}
			r, style := m.Open, openStyle
			switch {
			case c == g.Start:
				r, style = m.Start, startStyle
			case c == g.End:
				r, style = m.End, endStyle
			case g.Wall(c):
				r, style = m.Wall, wallStyle
			case tiles.Contains(c):
				r, style = TileRune, tileStyle
			}
			screen.SetContent(x, y, r, nil, style)
		}
	}
	return nil
}

// View draws g and blocks until the user presses q, Esc or Ctrl-C, or the
// screen is finalized. The caller owns Init and Fini. A nil grid returns
// ErrNilGrid without touching the screen.
func View(screen tcell.Screen, g *gridgraph.Grid, tiles *dijkstra.Tiles) error {
	if err := Draw(screen, g, tiles); err != nil {
		return err
	}
	screen.Show()
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			Draw(screen, g, tiles)
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		}
	}
}
