package demo

import (
	"time"

	"github.com/vovakirdan/tui-pathfind/internal/core"
	"github.com/vovakirdan/tui-pathfind/internal/follow"
	"github.com/vovakirdan/tui-pathfind/internal/grid"
	"github.com/vovakirdan/tui-pathfind/internal/pathfind"
)

// Status summarizes the demo after a step.
type Status struct {
	Position grid.Cell
	State    follow.State
	Paused   bool
	Steps    int
}

// Step runs one frame: input first, then time-based updates.
// dt is the time elapsed since the previous frame.
func (d *Demo) Step(in core.InputFrame, dt time.Duration) Status {
	d.tick++

	if in.Has(core.ActionRestart) {
		if err := d.restart(); err != nil {
			d.logger.Error("restart failed", "error", err)
		}
		return d.Status()
	}
	if in.Has(core.ActionPause) {
		d.paused = !d.paused
	}
	if in.Has(core.ActionTrace) {
		d.showTrace = !d.showTrace
	}

	if d.paused || d.tooSmall {
		return d.Status()
	}

	for _, c := range in.Clicks {
		d.handleClick(c)
	}

	d.follower.Advance(dt)
	d.blink.Tick(dt)

	return d.Status()
}

// restart begins a fresh run on a screen of the same size.
func (d *Demo) restart() error {
	return d.Reset(core.RuntimeConfig{
		Seed:    d.rng.Int63(),
		ScreenW: d.screenW,
		ScreenH: d.screenH,
	})
}

// handleClick routes a click: outside the grid it is ignored, on an obstacle
// it blinks, anywhere else it replaces the current path.
func (d *Demo) handleClick(c core.Click) {
	goal, ok := d.CellAt(c.X, c.Y)
	if !ok {
		return
	}
	d.clicks++

	if d.obstacles.Has(goal) {
		d.blocked++
		d.blink.Trigger(goal, d.cfg.Timing.BlinkDuration)
		d.logger.Warn("position is blocked", "cell", goal)
		return
	}

	d.Travel(goal)
}

// Travel searches from the agent's current cell to goal and hands the result
// to the follower, replacing whatever was left of the previous path.
// goal must be in bounds and not an obstacle.
func (d *Demo) Travel(goal grid.Cell) pathfind.Result {
	start := d.follower.Position()
	res := pathfind.Search(d.grid, d.obstacles, start, goal)

	d.lastSearch = res
	d.lastGoal = goal
	d.searched = true
	d.follower.Assign(res.Path)

	if !res.Found() && goal != start {
		d.unreachable++
		d.logger.Info("no path", "from", start, "to", goal, "expanded", res.Expanded)
		return res
	}
	d.logger.Debug("path assigned",
		"from", start,
		"to", goal,
		"length", len(res.Path),
		"expanded", res.Expanded,
	)
	return res
}

// Status returns the current demo status.
func (d *Demo) Status() Status {
	return Status{
		Position: d.follower.Position(),
		State:    d.follower.State(),
		Paused:   d.paused,
		Steps:    d.follower.Steps(),
	}
}
