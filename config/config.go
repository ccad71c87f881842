// Package config loads solver settings from an HCL file.
//
// Every attribute and block is optional; anything left out keeps the value
// from Default(). Expressions may read the process environment through the
// env object, e.g. turn_penalty = env.TURN_PENALTY.
//
//	turn_penalty   = 1000
//	step_cost      = 1
//	facing         = "right"
//	allow_reversal = true
//	max_cost       = 100000
//
//	markers {
//	  wall  = "#"
//	  start = "S"
//	  end   = "E"
//	  open  = "."
//	}
//
//	log {
//	  level  = "info"
//	  format = "text"
//	}
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/turnmaze/dijkstra"
	"github.com/katalvlaran/turnmaze/gridgraph"
)

var (
	// ErrBadMarker indicates a marker that is not exactly one character.
	ErrBadMarker = errors.New("config: markers must be exactly one character")
	// ErrBadFacing indicates an unknown facing name.
	ErrBadFacing = errors.New("config: facing must be one of up, right, down, left")
	// ErrBadLogLevel indicates an unknown log level.
	ErrBadLogLevel = errors.New("config: log level must be one of debug, info, warn, error")
	// ErrBadLogFormat indicates an unknown log format.
	ErrBadLogFormat = errors.New("config: log format must be text or json")
)

// Config is the resolved solver configuration.
type Config struct {
	TurnPenalty   int64
	StepCost      int64
	Facing        string
	AllowReversal bool
	MaxCost       *int64 // nil means no cap
	Markers       Markers
	Log           Log
}

// Markers holds the single-character cell markers.
type Markers struct {
	Wall, Start, End, Open string
}

// Log selects the logger level and output format.
type Log struct {
	Level  string
	Format string
}

// Default mirrors the package defaults of gridgraph and dijkstra.
func Default() Config {
	return Config{
		TurnPenalty:   dijkstra.DefaultTurnPenalty,
		StepCost:      dijkstra.DefaultStepCost,
		Facing:        gridgraph.Right.String(),
		AllowReversal: true,
		Markers:       Markers{Wall: "#", Start: "S", End: "E", Open: "."},
		Log:           Log{Level: "info", Format: "text"},
	}
}

// hclFile represents the top-level structure of a config file for decoding.
type hclFile struct {
	TurnPenalty   *int64      `hcl:"turn_penalty,optional"`
	StepCost      *int64      `hcl:"step_cost,optional"`
	Facing        *string     `hcl:"facing,optional"`
	AllowReversal *bool       `hcl:"allow_reversal,optional"`
	MaxCost       *int64      `hcl:"max_cost,optional"`
	Markers       *hclMarkers `hcl:"markers,block"`
	Log           *hclLog     `hcl:"log,block"`
}

type hclMarkers struct {
	Wall  *string `hcl:"wall,optional"`
	Start *string `hcl:"start,optional"`
	End   *string `hcl:"end,optional"`
	Open  *string `hcl:"open,optional"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Load reads and decodes the HCL file at path against the process environment.
func Load(path string) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes src against the process environment. filename is only used
// in diagnostics.
func Parse(src []byte, filename string) (Config, error) {
	return ParseWithEnv(src, filename, environ())
}

// ParseWithEnv decodes src, exposing env to expressions as the env object.
func ParseWithEnv(src []byte, filename string, env map[string]string) (Config, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", filename, diags)
	}

	var raw hclFile
	diags = gohcl.DecodeBody(file.Body, evalContext(env), &raw)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("config: failed to decode %s: %w", filename, diags)
	}

	cfg := Default()
	cfg.merge(&raw)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// merge overlays every value present in raw.
func (c *Config) merge(raw *hclFile) {
	setInt(&c.TurnPenalty, raw.TurnPenalty)
	setInt(&c.StepCost, raw.StepCost)
	setString(&c.Facing, raw.Facing)
	if raw.AllowReversal != nil {
		c.AllowReversal = *raw.AllowReversal
	}
	if raw.MaxCost != nil {
		v := *raw.MaxCost
		c.MaxCost = &v
	}
	if m := raw.Markers; m != nil {
		setString(&c.Markers.Wall, m.Wall)
		setString(&c.Markers.Start, m.Start)
		setString(&c.Markers.End, m.End)
		setString(&c.Markers.Open, m.Open)
	}
	if l := raw.Log; l != nil {
		setString(&c.Log.Level, l.Level)
		setString(&c.Log.Format, l.Format)
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)
}

func setInt(dst *int64, v *int64) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Validate checks markers, facing, the cost model and the log settings.
func (c Config) Validate() error {
	if _, err := c.GridOptions(); err != nil {
		return err
	}
	opts, err := c.SearchOptions(nil)
	if err != nil {
		return err
	}
	o := dijkstra.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		return fmt.Errorf("%w: %q", ErrBadLogFormat, c.Log.Format)
	}
	return nil
}

// GridOptions converts the markers into loader options.
func (c Config) GridOptions() (gridgraph.GridOptions, error) {
	var m gridgraph.Markers
	fields := []struct {
		name string
		src  string
		dst  *rune
	}{
		{"wall", c.Markers.Wall, &m.Wall},
		{"start", c.Markers.Start, &m.Start},
		{"end", c.Markers.End, &m.End},
		{"open", c.Markers.Open, &m.Open},
	}
	for _, f := range fields {
		if utf8.RuneCountInString(f.src) != 1 {
			return gridgraph.GridOptions{}, fmt.Errorf("%w: %s = %q", ErrBadMarker, f.name, f.src)
		}
		*f.dst, _ = utf8.DecodeRuneInString(f.src)
	}
	if err := m.Validate(); err != nil {
		return gridgraph.GridOptions{}, err
	}
	return gridgraph.GridOptions{Markers: m}, nil
}

// SearchOptions converts the cost model into solver options. A non-nil
// logger is passed through to the solver.
func (c Config) SearchOptions(logger *slog.Logger) ([]dijkstra.Option, error) {
	facing, err := gridgraph.ParseDirection(c.Facing)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadFacing, c.Facing)
	}
	reversal := dijkstra.ReversalDoublePenalty
	if !c.AllowReversal {
		reversal = dijkstra.ReversalForbidden
	}

	opts := []dijkstra.Option{
		dijkstra.WithTurnPenalty(c.TurnPenalty),
		dijkstra.WithStepCost(c.StepCost),
		dijkstra.WithFacing(facing),
		dijkstra.WithReversal(reversal),
		dijkstra.WithLogger(logger),
	}
	if c.MaxCost != nil {
		opts = append(opts, dijkstra.WithMaxCost(*c.MaxCost))
	}
	return opts, nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (l Log) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrBadLogLevel, l.Level)
}

// evalContext exposes env as an object variable.
func evalContext(env map[string]string) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vals[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vals),
		},
	}
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && k != "" {
			env[k] = v
		}
	}
	return env
}
