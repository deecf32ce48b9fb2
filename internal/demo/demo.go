// Package demo implements the interactive pathfinding demo: a player token
// walks toward a clicked cell along an A* path, around randomly generated
// obstacles. It is pure logic; the platform supplies input, elapsed time and
// a screen to draw on.
package demo

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pathfind/internal/config"
	"github.com/vovakirdan/tui-pathfind/internal/core"
	"github.com/vovakirdan/tui-pathfind/internal/follow"
	"github.com/vovakirdan/tui-pathfind/internal/grid"
	"github.com/vovakirdan/tui-pathfind/internal/pathfind"
)

// hudHeight is the number of screen rows above the grid.
const hudHeight = 2

// Demo owns every piece of mutable state for one run: the grid, its
// obstacles, the follower and the blink marker.
type Demo struct {
	cfg     config.DemoConfig
	palette config.Palette
	logger  *log.Logger

	rng       *rand.Rand
	seed      int64
	tick      uint64
	grid      grid.Grid
	obstacles grid.ObstacleSet
	follower  *follow.Follower
	blink     follow.Blink

	// Last search, kept for the HUD
	lastSearch pathfind.Result
	lastGoal   grid.Cell
	searched   bool

	// Counters
	clicks      int
	blocked     int
	unreachable int

	// Screen layout
	screenW  int
	screenH  int
	area     core.Rect // Screen rectangle covered by the grid
	tooSmall bool

	paused    bool
	showTrace bool
}

// New creates a demo with the given configuration. A nil logger discards output.
// Call Reset before the first Step.
func New(cfg config.DemoConfig, logger *log.Logger) *Demo {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Demo{
		cfg:     cfg,
		palette: cfg.Colors.Palette(),
		logger:  logger,
	}
}

// Title returns the display name.
func (d *Demo) Title() string {
	return "A* Pathfinder"
}

// Reset starts a new run: it sizes the grid, generates obstacles once and
// places the agent on the start cell with no path.
func (d *Demo) Reset(rc core.RuntimeConfig) error {
	if err := d.cfg.Validate(); err != nil {
		return err
	}

	d.seed = rc.Seed
	d.rng = rand.New(rand.NewSource(rc.Seed))
	d.tick = 0
	d.clicks, d.blocked, d.unreachable = 0, 0, 0
	d.lastSearch = pathfind.Result{}
	d.searched = false
	d.paused = false
	d.showTrace = d.cfg.Display.ShowTrace
	d.blink.Clear()

	w, h := d.cfg.Grid.Width, d.cfg.Grid.Height
	if !d.cfg.FixedGrid() {
		w, h = FitGrid(rc.ScreenW, rc.ScreenH, d.cfg.Tile)
	}
	g, err := grid.New(w, h)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	d.grid = g

	start := d.cfg.Start()
	if !d.cfg.FixedGrid() {
		// A fitted grid can be smaller than the configured start allows.
		start = grid.C(core.Clamp(start.X, 0, w-1), core.Clamp(start.Y, 0, h-1))
	}

	d.obstacles, err = grid.GenerateObstacles(d.rng, g, start, d.cfg.Obstacles.Fraction)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	d.follower = follow.New(start, d.cfg.Timing.StepDelay)

	d.Resize(rc.ScreenW, rc.ScreenH)

	d.logger.Info("run started",
		"seed", rc.Seed,
		"grid", fmt.Sprintf("%dx%d", w, h),
		"obstacles", d.obstacles.Len(),
		"start", start,
	)
	return nil
}

// FitGrid returns the largest grid that fits a screen of the given size
// below the HUD, at least 1x1.
func FitGrid(screenW, screenH int, tile config.TileConfig) (w, h int) {
	w = core.Max(1, screenW/tile.Width)
	h = core.Max(1, (screenH-hudHeight)/tile.Height)
	return w, h
}

// Resize recomputes where the grid sits on screen. The grid itself and its
// obstacles never change.
func (d *Demo) Resize(screenW, screenH int) {
	d.screenW = screenW
	d.screenH = screenH

	gridW := d.grid.W * d.cfg.Tile.Width
	gridH := d.grid.H * d.cfg.Tile.Height
	d.tooSmall = screenW < gridW || screenH < gridH+hudHeight

	d.area = core.NewRect((screenW-gridW)/2, hudHeight, gridW, gridH)
	if d.tooSmall {
		d.area.X = 0
	}
}

// TileRect returns the screen rectangle covered by a grid cell.
func (d *Demo) TileRect(c grid.Cell) core.Rect {
	return core.NewRect(
		d.area.X+c.X*d.cfg.Tile.Width,
		d.area.Y+c.Y*d.cfg.Tile.Height,
		d.cfg.Tile.Width,
		d.cfg.Tile.Height,
	)
}

// CellAt converts a screen position to the grid cell drawn there.
// Positions outside the grid report false.
func (d *Demo) CellAt(x, y int) (grid.Cell, bool) {
	if d.tooSmall || !d.area.Contains(x, y) {
		return grid.Cell{}, false
	}
	return grid.C((x-d.area.X)/d.cfg.Tile.Width, (y-d.area.Y)/d.cfg.Tile.Height), true
}

// Grid returns the grid dimensions.
func (d *Demo) Grid() grid.Grid {
	return d.grid
}

// Obstacles returns the obstacle set. Callers must not modify it.
func (d *Demo) Obstacles() grid.ObstacleSet {
	return d.obstacles
}

// Position returns the agent's current cell.
func (d *Demo) Position() grid.Cell {
	return d.follower.Position()
}

// Seed returns the seed the current run was generated from.
func (d *Demo) Seed() int64 {
	return d.seed
}
