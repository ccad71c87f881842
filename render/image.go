// Package render draws a maze and its best tiles, either as a PNG or on a
// terminal screen.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/turnmaze/dijkstra"
	"github.com/katalvlaran/turnmaze/gridgraph"
)

// CellSize is the edge length, in pixels, of one maze cell.
const CellSize = 16

// Palette used by Image.
var (
	WallColor  = color.RGBA{0, 0, 0, 255}
	OpenColor  = color.RGBA{255, 255, 255, 255}
	TileColor  = color.RGBA{220, 50, 50, 255}
	StartColor = color.RGBA{40, 180, 70, 255}
	EndColor   = color.RGBA{100, 120, 255, 255}
	ArrowColor = color.RGBA{255, 255, 255, 255}
)

// Image rasterizes g with tiles highlighted and an arrow on the start cell
// pointing in the starting facing. tiles may be nil.
func Image(g *gridgraph.Grid, tiles *dijkstra.Tiles, facing gridgraph.Direction) (*image.RGBA, error) {
	if g == nil {
		return nil, dijkstra.ErrNilGrid
	}
	base := image.NewRGBA(image.Rect(0, 0, g.Width*CellSize, g.Height*CellSize))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := gridgraph.Coordinate{X: x, Y: y}
			r := image.Rect(x*CellSize, y*CellSize, (x+1)*CellSize, (y+1)*CellSize)
			draw.Draw(base, r, image.NewUniform(cellColor(g, tiles, c)), image.Point{}, draw.Src)
		}
	}

	decorated := image_utils.NewCompositeImage()
	if err := decorated.AddImage(base, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: error setting base maze image: %w", err)
	}
	arrow := image_utils.ResizeImage(arrowFor(facing, ArrowColor), CellSize/2, CellSize/2)
	at := image.Pt(g.Start.X*CellSize+CellSize/4, g.Start.Y*CellSize+CellSize/4)
	if err := decorated.AddImage(arrow, at); err != nil {
		return nil, fmt.Errorf("render: error adding facing arrow: %w", err)
	}
	return image_utils.ToRGBA(decorated), nil
}

func cellColor(g *gridgraph.Grid, tiles *dijkstra.Tiles, c gridgraph.Coordinate) color.RGBA {
	switch {
	case c == g.Start:
		return StartColor
	case c == g.End:
		return EndColor
	case g.Wall(c):
		return WallColor
	case tiles.Contains(c):
		return TileColor
	}
	return OpenColor
}

func arrowFor(d gridgraph.Direction, c color.Color) image.Image {
	switch d {
	case gridgraph.Up:
		return image_utils.UpArrow(c)
	case gridgraph.Down:
		return image_utils.DownArrow(c)
	case gridgraph.Left:
		return image_utils.LeftArrow(c)
	}
	return image_utils.RightArrow(c)
}

// PNG encodes Image(g, tiles, facing) to w.
func PNG(w io.Writer, g *gridgraph.Grid, tiles *dijkstra.Tiles, facing gridgraph.Direction) error {
	pic, err := Image(g, tiles, facing)
	if err != nil {
		return err
	}
	if err := png.Encode(w, pic); err != nil {
		return fmt.Errorf("render: failed encoding PNG: %w", err)
	}
	return nil
}

// WritePNG creates (or truncates) the file at path and writes the PNG to it.
func WritePNG(path string, g *gridgraph.Grid, tiles *dijkstra.Tiles, facing gridgraph.Direction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: failed creating %s: %w", path, err)
	}
	if err := PNG(f, g, tiles, facing); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
