// Package config provides YAML-based configuration loading for the demo.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pathfind/internal/core"
	"github.com/vovakirdan/tui-pathfind/internal/grid"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// DemoConfig contains all configuration for the pathfinding demo.
type DemoConfig struct {
	Grid      GridConfig     `yaml:"grid"`
	Tile      TileConfig     `yaml:"tile"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Timing    TimingConfig   `yaml:"timing"`
	Colors    ColorConfig    `yaml:"colors"`
	Display   DisplayConfig  `yaml:"display"`
}

// GridConfig defines grid dimensions and the agent's starting cell.
type GridConfig struct {
	Width  int `yaml:"width"`  // 0 = fit to terminal
	Height int `yaml:"height"` // 0 = fit to terminal
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// TileConfig defines how many terminal characters one grid tile spans.
type TileConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ObstacleConfig defines obstacle generation.
type ObstacleConfig struct {
	Fraction float64 `yaml:"fraction"` // Share of non-start cells that are blocked
}

// TimingConfig defines movement cadence and feedback durations.
type TimingConfig struct {
	StepDelay     time.Duration `yaml:"step_delay"`
	BlinkDuration time.Duration `yaml:"blink_duration"`
	FPS           int           `yaml:"fps"`
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"` // Longer frames are clamped
}

// ColorConfig names the color of each drawn element.
type ColorConfig struct {
	Grid     string `yaml:"grid"`
	Obstacle string `yaml:"obstacle"`
	Blink    string `yaml:"blink"`
	Player   string `yaml:"player"`
	Path     string `yaml:"path"`
	Goal     string `yaml:"goal"`
	HUD      string `yaml:"hud"`
}

// DisplayConfig toggles optional overlays.
type DisplayConfig struct {
	ShowTrace bool `yaml:"show_trace"` // Draw the remaining path
	ShowGoal  bool `yaml:"show_goal"`  // Mark the current goal cell
}

// Palette is ColorConfig resolved to screen colors.
type Palette struct {
	Grid     core.Color
	Obstacle core.Color
	Blink    core.Color
	Player   core.Color
	Path     core.Color
	Goal     core.Color
	HUD      core.Color
}

// Palette resolves color names. Unknown names fall back to ColorDefault;
// Validate reports them.
func (c ColorConfig) Palette() Palette {
	parse := func(s string) core.Color {
		col, _ := core.ParseColor(s)
		return col
	}
	return Palette{
		Grid:     parse(c.Grid),
		Obstacle: parse(c.Obstacle),
		Blink:    parse(c.Blink),
		Player:   parse(c.Player),
		Path:     parse(c.Path),
		Goal:     parse(c.Goal),
		HUD:      parse(c.HUD),
	}
}

// Start returns the configured starting cell.
func (c DemoConfig) Start() grid.Cell {
	return grid.C(c.Grid.StartX, c.Grid.StartY)
}

// FixedGrid reports whether the grid size is fixed rather than fitted to the terminal.
func (c DemoConfig) FixedGrid() bool {
	return c.Grid.Width > 0 && c.Grid.Height > 0
}

// Validate checks that every value is usable.
func (c DemoConfig) Validate() error {
	if c.Grid.Width < 0 || c.Grid.Height < 0 {
		return fmt.Errorf("%w: grid size %dx%d is negative", ErrInvalid, c.Grid.Width, c.Grid.Height)
	}
	if (c.Grid.Width == 0) != (c.Grid.Height == 0) {
		return fmt.Errorf("%w: grid width and height must both be set or both be 0", ErrInvalid)
	}
	if c.Grid.StartX < 0 || c.Grid.StartY < 0 {
		return fmt.Errorf("%w: start %v is negative", ErrInvalid, c.Start())
	}
	if c.FixedGrid() && (c.Grid.StartX >= c.Grid.Width || c.Grid.StartY >= c.Grid.Height) {
		return fmt.Errorf("%w: start %v outside %dx%d grid", ErrInvalid, c.Start(), c.Grid.Width, c.Grid.Height)
	}
	if c.Tile.Width <= 0 || c.Tile.Height <= 0 {
		return fmt.Errorf("%w: tile size %dx%d must be positive", ErrInvalid, c.Tile.Width, c.Tile.Height)
	}
	if c.Obstacles.Fraction < 0 || c.Obstacles.Fraction > 1 {
		return fmt.Errorf("%w: obstacle fraction %v outside [0, 1]", ErrInvalid, c.Obstacles.Fraction)
	}
	if c.Timing.StepDelay <= 0 {
		return fmt.Errorf("%w: step_delay must be positive", ErrInvalid)
	}
	if c.Timing.BlinkDuration < 0 {
		return fmt.Errorf("%w: blink_duration must not be negative", ErrInvalid)
	}
	if c.Timing.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive", ErrInvalid)
	}
	if c.Timing.MaxFrameDelta < 0 {
		return fmt.Errorf("%w: max_frame_delta must not be negative", ErrInvalid)
	}

	colors := map[string]string{
		"grid":     c.Colors.Grid,
		"obstacle": c.Colors.Obstacle,
		"blink":    c.Colors.Blink,
		"player":   c.Colors.Player,
		"path":     c.Colors.Path,
		"goal":     c.Colors.Goal,
		"hud":      c.Colors.HUD,
	}
	for key, name := range colors {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("%w: colors.%s: unknown color %q", ErrInvalid, key, name)
		}
	}
	return nil
}
