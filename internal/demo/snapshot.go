package demo

import (
	"github.com/vovakirdan/tui-pathfind/internal/follow"
	"github.com/vovakirdan/tui-pathfind/internal/grid"
)

// StateType represents the current demo state.
type StateType string

const (
	StateIdle        StateType = "idle"
	StateFollowing   StateType = "following"
	StatePaused      StateType = "paused"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the demo state for determinism testing and debugging.
type Snapshot struct {
	Tick        uint64
	Seed        int64
	GridW       int
	GridH       int
	Obstacles   int
	Position    grid.Cell
	Remaining   []grid.Cell
	Blinking    bool
	BlinkCell   grid.Cell
	Steps       int
	Clicks      int
	Blocked     int // Clicks that landed on an obstacle
	Unreachable int // Clicks with no path to them
	ShowTrace   bool
	State       StateType
}

// Snapshot returns the current demo snapshot.
func (d *Demo) Snapshot() Snapshot {
	state := StateIdle
	switch {
	case d.tooSmall:
		state = StatePausedSmall
	case d.paused:
		state = StatePaused
	case d.follower.State() == follow.Following:
		state = StateFollowing
	}

	blinkCell, blinking := d.blink.Active()

	return Snapshot{
		Tick:        d.tick,
		Seed:        d.seed,
		GridW:       d.grid.W,
		GridH:       d.grid.H,
		Obstacles:   d.obstacles.Len(),
		Position:    d.follower.Position(),
		Remaining:   d.follower.Remaining(),
		Blinking:    blinking,
		BlinkCell:   blinkCell,
		Steps:       d.follower.Steps(),
		Clicks:      d.clicks,
		Blocked:     d.blocked,
		Unreachable: d.unreachable,
		ShowTrace:   d.showTrace,
		State:       state,
	}
}
