package demo

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pathfind/internal/config"
	"github.com/vovakirdan/tui-pathfind/internal/core"
	"github.com/vovakirdan/tui-pathfind/internal/grid"
)

const step = config.DefaultStepDelay

// testConfig is a 5x5 grid with no random obstacles and 2x1 tiles.
// On an 80x24 screen the grid covers columns 35..44 and rows 2..6.
func testConfig() config.DemoConfig {
	cfg := config.DefaultDemoConfig()
	cfg.Grid = config.GridConfig{Width: 5, Height: 5}
	cfg.Obstacles.Fraction = 0
	return cfg
}

func newTestDemo(t *testing.T, cfg config.DemoConfig) *Demo {
	t.Helper()
	d := New(cfg, nil)
	require.NoError(t, d.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24}))
	return d
}

// clickOn builds an input frame with a click on the first column of a tile.
func clickOn(c grid.Cell) core.InputFrame {
	in := core.NewInputFrame()
	in.AddClick(35+2*c.X, 2+c.Y)
	return in
}

func action(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestCellAt(t *testing.T) {
	d := newTestDemo(t, testConfig())

	tests := []struct {
		x, y int
		want grid.Cell
		ok   bool
	}{
		{35, 2, grid.C(0, 0), true},
		{36, 2, grid.C(0, 0), true},
		{37, 2, grid.C(1, 0), true},
		{44, 6, grid.C(4, 4), true},
		{34, 2, grid.Cell{}, false},
		{45, 2, grid.Cell{}, false},
		{35, 1, grid.Cell{}, false},
		{35, 7, grid.Cell{}, false},
		{-1, -1, grid.Cell{}, false},
	}
	for _, tt := range tests {
		got, ok := d.CellAt(tt.x, tt.y)
		assert.Equal(t, tt.ok, ok, "CellAt(%d, %d)", tt.x, tt.y)
		if tt.ok {
			assert.Equal(t, tt.want, got, "CellAt(%d, %d)", tt.x, tt.y)
		}
	}
}

func TestClickWalksToGoal(t *testing.T) {
	d := newTestDemo(t, testConfig())

	d.Step(clickOn(grid.C(2, 0)), 0)
	snap := d.Snapshot()
	assert.Equal(t, StateFollowing, snap.State)
	assert.Equal(t, []grid.Cell{grid.C(1, 0), grid.C(2, 0)}, snap.Remaining)
	assert.Equal(t, grid.C(0, 0), snap.Position)

	empty := core.NewInputFrame()
	d.Step(empty, step)
	assert.Equal(t, grid.C(1, 0), d.Position())

	status := d.Step(empty, step)
	assert.Equal(t, grid.C(2, 0), status.Position)
	assert.Equal(t, 2, status.Steps)

	snap = d.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Empty(t, snap.Remaining)
	assert.Equal(t, 1, snap.Clicks)
}

func TestClickOnObstacleBlinks(t *testing.T) {
	d := newTestDemo(t, testConfig())
	d.obstacles = grid.NewObstacleSet(grid.C(2, 2))

	d.Step(clickOn(grid.C(2, 2)), 0)

	snap := d.Snapshot()
	require.True(t, snap.Blinking)
	assert.Equal(t, grid.C(2, 2), snap.BlinkCell)
	assert.Equal(t, 1, snap.Blocked)
	assert.Empty(t, snap.Remaining, "blocked click must not assign a path")
	assert.Equal(t, config.DefaultBlinkDuration, d.blink.Remaining())

	empty := core.NewInputFrame()
	d.Step(empty, config.DefaultBlinkDuration-time.Millisecond)
	assert.True(t, d.Snapshot().Blinking, "blink cleared early")

	d.Step(empty, time.Millisecond)
	assert.False(t, d.Snapshot().Blinking, "blink should clear after its full duration")
}

func TestClickOutsideGridIgnored(t *testing.T) {
	d := newTestDemo(t, testConfig())

	in := core.NewInputFrame()
	in.AddClick(0, 0)   // HUD
	in.AddClick(34, 3)  // left of the grid
	in.AddClick(45, 3)  // right of the grid
	in.AddClick(40, 20) // below the grid
	in.AddClick(-3, -3)
	d.Step(in, step)

	snap := d.Snapshot()
	assert.Equal(t, 0, snap.Clicks)
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, grid.C(0, 0), snap.Position)
}

func TestClickReplacesPathMidTraversal(t *testing.T) {
	d := newTestDemo(t, testConfig())

	d.Step(clickOn(grid.C(4, 0)), step)
	require.Equal(t, grid.C(1, 0), d.Position())

	d.Step(clickOn(grid.C(1, 3)), 0)
	assert.Equal(t, []grid.Cell{grid.C(1, 1), grid.C(1, 2), grid.C(1, 3)}, d.Snapshot().Remaining)

	empty := core.NewInputFrame()
	for range 3 {
		d.Step(empty, step)
	}
	assert.Equal(t, grid.C(1, 3), d.Position())
	assert.Equal(t, StateIdle, d.Snapshot().State)
}

func TestClickOnCurrentCell(t *testing.T) {
	d := newTestDemo(t, testConfig())

	d.Step(clickOn(grid.C(0, 0)), step)

	snap := d.Snapshot()
	assert.Equal(t, 1, snap.Clicks)
	assert.Equal(t, 0, snap.Unreachable)
	assert.Equal(t, StateIdle, snap.State)
}

func TestTravelUnreachable(t *testing.T) {
	d := newTestDemo(t, testConfig())
	// Wall off column 2.
	d.obstacles = grid.NewObstacleSet(grid.C(2, 0), grid.C(2, 1), grid.C(2, 2), grid.C(2, 3), grid.C(2, 4))

	res := d.Travel(grid.C(4, 4))
	assert.False(t, res.Found())
	assert.NotNil(t, res.Path)

	snap := d.Snapshot()
	assert.Equal(t, 1, snap.Unreachable)
	assert.Equal(t, StateIdle, snap.State)

	// An unreachable click also drops the previous path.
	d.Travel(grid.C(0, 4))
	require.Equal(t, StateFollowing, d.Snapshot().State)
	d.Travel(grid.C(3, 0))
	assert.Equal(t, StateIdle, d.Snapshot().State)
}

func TestPauseFreezesDemo(t *testing.T) {
	d := newTestDemo(t, testConfig())
	d.Step(clickOn(grid.C(3, 0)), 0)

	status := d.Step(action(core.ActionPause), step)
	assert.True(t, status.Paused)
	assert.Equal(t, grid.C(0, 0), status.Position, "paused demo must not move")

	d.Step(clickOn(grid.C(0, 4)), step)
	assert.Equal(t, 1, d.Snapshot().Clicks, "clicks are ignored while paused")
	assert.Equal(t, StatePaused, d.Snapshot().State)

	status = d.Step(action(core.ActionPause), step)
	assert.False(t, status.Paused)
	assert.Equal(t, grid.C(1, 0), status.Position)
}

func TestTraceToggle(t *testing.T) {
	d := newTestDemo(t, testConfig())
	require.True(t, d.Snapshot().ShowTrace)

	d.Step(action(core.ActionTrace), 0)
	assert.False(t, d.Snapshot().ShowTrace)
	d.Step(action(core.ActionTrace), 0)
	assert.True(t, d.Snapshot().ShowTrace)
}

func TestRestartRegeneratesObstacles(t *testing.T) {
	cfg := testConfig()
	cfg.Grid = config.GridConfig{Width: 10, Height: 8}
	cfg.Obstacles.Fraction = 0.3
	d := newTestDemo(t, cfg)

	want := grid.ObstacleCount(d.Grid(), 0.3)
	require.Equal(t, want, d.Obstacles().Len())

	d.Step(clickOn(grid.C(1, 0)), step)
	for range 5 {
		seed := d.Seed()
		d.Step(action(core.ActionRestart), 0)

		snap := d.Snapshot()
		assert.NotEqual(t, seed, snap.Seed)
		assert.Equal(t, want, snap.Obstacles)
		assert.Equal(t, grid.C(0, 0), snap.Position)
		assert.Equal(t, StateIdle, snap.State)
		assert.Equal(t, 0, snap.Clicks)
		assert.False(t, d.Obstacles().Has(grid.C(0, 0)), "start cell must stay free")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig()
	cfg.Grid = config.GridConfig{Width: 12, Height: 10, StartX: 5, StartY: 5}
	cfg.Obstacles.Fraction = 0.3

	run := func() Snapshot {
		d := New(cfg, nil)
		require.NoError(t, d.Reset(core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24}))

		in := core.NewInputFrame()
		for i := range 200 {
			in.Clear()
			switch i {
			case 10:
				in.AddClick(30, 3)
			case 40:
				in.AddClick(50, 11)
			case 90:
				in.Set(core.ActionRestart)
			case 100:
				in.AddClick(28, 2)
			}
			d.Step(in, 16*time.Millisecond)
		}
		return d.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestResizeTooSmallKeepsObstacles(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles.Fraction = 0.4
	d := newTestDemo(t, cfg)
	before := d.Obstacles().Cells()

	d.Resize(80, 5)
	assert.Equal(t, StatePausedSmall, d.Snapshot().State)

	d.Step(clickOn(grid.C(1, 0)), step)
	assert.Equal(t, 0, d.Snapshot().Clicks, "clicks are ignored while too small")

	screen := core.NewScreen(80, 5)
	d.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")

	d.Resize(80, 24)
	assert.Equal(t, StateIdle, d.Snapshot().State)
	assert.Equal(t, before, d.Obstacles().Cells())
	assert.Equal(t, 5, d.Grid().W)
	assert.Equal(t, 5, d.Grid().H)
}

func TestFitGrid(t *testing.T) {
	tile := config.TileConfig{Width: 2, Height: 1}

	w, h := FitGrid(80, 24, tile)
	assert.Equal(t, 40, w)
	assert.Equal(t, 22, h)

	w, h = FitGrid(1, 1, tile)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestResetFitsGridAndClampsStart(t *testing.T) {
	cfg := config.DefaultDemoConfig()
	cfg.Grid.StartX = 100
	cfg.Grid.StartY = 3
	d := newTestDemo(t, cfg)

	assert.Equal(t, 40, d.Grid().W)
	assert.Equal(t, 22, d.Grid().H)
	assert.Equal(t, grid.C(39, 3), d.Position())
	assert.Equal(t, grid.ObstacleCount(d.Grid(), config.DefaultObstacleFraction), d.Obstacles().Len())
}

func TestResetRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Tile.Width = 0
	d := New(cfg, nil)

	err := d.Reset(core.DefaultConfig())
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRender(t *testing.T) {
	d := newTestDemo(t, testConfig())
	d.obstacles = grid.NewObstacleSet(grid.C(4, 4))
	screen := core.NewScreen(80, 24)

	d.Render(screen)
	assert.True(t, strings.Contains(screen.Row(0), d.Title()))
	assert.Equal(t, '─', screen.Get(0, 1))
	assert.Equal(t, glyphPlayer, screen.Get(35, 2))
	assert.Equal(t, glyphPlayer, screen.Get(36, 2))
	assert.Equal(t, glyphEmpty, screen.Get(37, 2))
	assert.Equal(t, ' ', screen.Get(38, 2))
	assert.Equal(t, glyphObstacle, screen.Get(43, 6))
	assert.Equal(t, glyphObstacle, screen.Get(44, 6))
	assert.Equal(t, d.palette.Player, screen.GetCell(35, 2).Color)

	d.Step(clickOn(grid.C(2, 0)), 0)
	d.Render(screen)
	assert.Equal(t, glyphTrace, screen.Get(37, 2))
	assert.Equal(t, glyphGoal, screen.Get(39, 2))
	assert.Contains(t, screen.Row(0), "Goal (2,0)")

	d.Step(action(core.ActionTrace), 0)
	d.Render(screen)
	assert.Equal(t, glyphEmpty, screen.Get(37, 2))

	d.Step(action(core.ActionPause), 0)
	d.Render(screen)
	assert.Contains(t, screen.String(), "Paused")
}

func TestRenderBlink(t *testing.T) {
	d := newTestDemo(t, testConfig())
	d.obstacles = grid.NewObstacleSet(grid.C(1, 1))

	d.Step(clickOn(grid.C(1, 1)), 0)
	screen := core.NewScreen(80, 24)
	d.Render(screen)

	cell := screen.GetCell(37, 3)
	assert.Equal(t, glyphBlink, cell.Rune)
	assert.Equal(t, d.palette.Blink, cell.Color)
	assert.Contains(t, screen.Row(0), "Blocked")
}

func TestRenderASCII(t *testing.T) {
	g, err := grid.New(4, 2)
	require.NoError(t, err)
	obstacles := grid.NewObstacleSet(grid.C(1, 0))
	path := []grid.Cell{grid.C(0, 1), grid.C(1, 1), grid.C(2, 1), grid.C(3, 1)}

	got := RenderASCII(g, obstacles, grid.C(0, 0), path).String()
	assert.Equal(t, "S#..\n***G", got)
}
