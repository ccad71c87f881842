// Command turnmaze prints the lowest score of a maze and the number of tiles
// lying on any lowest-score walk.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/turnmaze/config"
	"github.com/katalvlaran/turnmaze/dijkstra"
	"github.com/katalvlaran/turnmaze/gridgraph"
	"github.com/katalvlaran/turnmaze/render"
)

// newScreen is swapped out in tests.
var newScreen = tcell.NewScreen

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic; results go to outW, logs to errW.
func run(outW, errW io.Writer, args []string) error {
	opts, shouldExit, err := parseArgs(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	logger := newLogger(level, cfg.Log.Format, errW)

	gridOpts, err := cfg.GridOptions()
	if err != nil {
		return err
	}
	searchOpts, err := cfg.SearchOptions(logger)
	if err != nil {
		return err
	}

	logger.Debug("Loading maze.", "path", opts.MazePath)
	g, err := gridgraph.Load(opts.MazePath, gridOpts)
	if err != nil {
		return err
	}
	logger.Info("Maze loaded.", "width", g.Width, "height", g.Height, "start", g.Start, "end", g.End)

	tiles, err := dijkstra.BestTiles(g, searchOpts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(outW, "Lowest score: %d\n", tiles.Cost)
	fmt.Fprintf(outW, "Tiles: %d\n", tiles.Count())

	facing, err := gridgraph.ParseDirection(cfg.Facing)
	if err != nil {
		return err
	}
	if opts.PNGPath != "" {
		if err := render.WritePNG(opts.PNGPath, g, tiles, facing); err != nil {
			return err
		}
		logger.Info("PNG written.", "path", opts.PNGPath)
	}
	if opts.View {
		return view(logger, g, tiles)
	}
	return nil
}

// loadConfig reads the config file, if any, and applies command-line
// overrides on top of it.
func loadConfig(opts *options) (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigPath); err != nil {
			return config.Config{}, err
		}
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}
	if opts.TurnPenalty != nil {
		cfg.TurnPenalty = *opts.TurnPenalty
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, nil
}

func view(logger *slog.Logger, g *gridgraph.Grid, tiles *dijkstra.Tiles) error {
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("turnmaze: failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("turnmaze: failed to init terminal: %w", err)
	}
	defer screen.Fini()
	logger.Debug("Terminal view opened.")
	return render.View(screen, g, tiles)
}
