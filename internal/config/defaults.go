package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pathfind.yaml
var defaultDemoYAML []byte

// Named defaults for the demo. The embedded YAML mirrors these values.
const (
	DefaultGridWidth        = 0 // fit to terminal
	DefaultGridHeight       = 0
	DefaultTileWidth        = 2 // two columns make a roughly square tile
	DefaultTileHeight       = 1
	DefaultObstacleFraction = 0.25
	DefaultStepDelay        = 100 * time.Millisecond
	DefaultBlinkDuration    = 333 * time.Millisecond
	DefaultFPS              = 60
	DefaultMaxFrameDelta    = 250 * time.Millisecond
)

// DefaultDemoConfig returns the default demo configuration.
func DefaultDemoConfig() DemoConfig {
	return DemoConfig{
		Grid: GridConfig{
			Width:  DefaultGridWidth,
			Height: DefaultGridHeight,
			StartX: 0,
			StartY: 0,
		},
		Tile: TileConfig{
			Width:  DefaultTileWidth,
			Height: DefaultTileHeight,
		},
		Obstacles: ObstacleConfig{
			Fraction: DefaultObstacleFraction,
		},
		Timing: TimingConfig{
			StepDelay:     DefaultStepDelay,
			BlinkDuration: DefaultBlinkDuration,
			FPS:           DefaultFPS,
			MaxFrameDelta: DefaultMaxFrameDelta,
		},
		Colors: ColorConfig{
			Grid:     "dark-gray",
			Obstacle: "gray",
			Blink:    "bright-red",
			Player:   "bright-green",
			Path:     "cyan",
			Goal:     "yellow",
			HUD:      "white",
		},
		Display: DisplayConfig{
			ShowTrace: true,
			ShowGoal:  true,
		},
	}
}
