package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// defaultMazePath is read when no path argument is given.
const defaultMazePath = "puzzle.txt"

// ExitError is an error carrying a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// options holds everything parsed from the command line. Empty strings and a
// nil TurnPenalty mean "not given on the command line".
type options struct {
	MazePath    string
	ConfigPath  string
	LogLevel    string
	LogFormat   string
	PNGPath     string
	View        bool
	TurnPenalty *int64
}

// parseArgs processes command-line arguments. It returns the parsed options,
// whether the program should exit cleanly, or an *ExitError.
func parseArgs(args []string, output io.Writer) (*options, bool, error) {
	flagSet := flag.NewFlagSet("turnmaze", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
turnmaze - lowest score and best tiles of a turn-penalised grid maze.

Usage:
  turnmaze [options] [MAZE_PATH]

Arguments:
  MAZE_PATH
    Path to the maze text file (default "puzzle.txt").

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	logLevelFlag := flagSet.String("log-level", "", "Logging level: 'debug', 'info', 'warn' or 'error'. Overrides the config file.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format: 'text' or 'json'. Overrides the config file.")
	pngFlag := flagSet.String("png", "", "Write a PNG of the maze and its best tiles to this path.")
	viewFlag := flagSet.Bool("view", false, "Show the solved maze in the terminal until q, Esc or Ctrl-C.")
	penaltyFlag := flagSet.Int64("turn-penalty", 0, "Cost of one 90 degree turn. Overrides the config file.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one maze path, got %d", flagSet.NArg())}
	}

	opts := &options{
		MazePath:   defaultMazePath,
		ConfigPath: *configFlag,
		LogLevel:   strings.ToLower(*logLevelFlag),
		LogFormat:  strings.ToLower(*logFormatFlag),
		PNGPath:    *pngFlag,
		View:       *viewFlag,
	}
	if flagSet.NArg() == 1 {
		opts.MazePath = flagSet.Arg(0)
	}
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "turn-penalty" {
			v := *penaltyFlag
			opts.TurnPenalty = &v
		}
	})

	switch opts.LogFormat {
	case "", "text", "json":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	return opts, false, nil
}
