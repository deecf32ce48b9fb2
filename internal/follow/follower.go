// Package follow moves an agent along a computed path one cell at a time
// on a fixed cadence, and tracks the transient blink shown for blocked clicks.
package follow

import (
	"time"

	"github.com/vovakirdan/tui-pathfind/internal/grid"
)

// State is the follower's state.
type State int

const (
	Idle      State = iota // No path remaining
	Following              // Path remaining
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Following:
		return "following"
	default:
		return "unknown"
	}
}

// Follower owns the agent position and the path it is walking.
type Follower struct {
	pos       grid.Cell
	path      []grid.Cell
	stepDelay time.Duration
	elapsed   time.Duration
	steps     int
}

// New creates an idle follower at start that steps once every stepDelay.
func New(start grid.Cell, stepDelay time.Duration) *Follower {
	return &Follower{
		pos:       start,
		stepDelay: stepDelay,
	}
}

// Position returns the agent's current cell.
func (f *Follower) Position() grid.Cell {
	return f.pos
}

// State returns Following while any path remains, Idle otherwise.
func (f *Follower) State() State {
	if len(f.path) > 0 {
		return Following
	}
	return Idle
}

// Remaining returns a copy of the cells still to be walked.
func (f *Follower) Remaining() []grid.Cell {
	out := make([]grid.Cell, len(f.path))
	copy(out, f.path)
	return out
}

// Goal returns the last cell of the remaining path.
func (f *Follower) Goal() (grid.Cell, bool) {
	if len(f.path) == 0 {
		return grid.Cell{}, false
	}
	return f.path[len(f.path)-1], true
}

// Steps returns how many cells the agent has moved since creation.
func (f *Follower) Steps() int {
	return f.steps
}

// Assign discards whatever is left of the current path and replaces it.
// An empty path leaves the follower idle.
func (f *Follower) Assign(path []grid.Cell) {
	f.path = append(f.path[:0:0], path...)
}

// Advance accumulates dt and moves one cell once the accumulator reaches the
// step delay. The accumulator keeps growing while idle, so the first step of
// a new path may happen on the very next tick.
// Reports whether the agent moved.
func (f *Follower) Advance(dt time.Duration) bool {
	f.elapsed += dt

	if len(f.path) == 0 || f.elapsed < f.stepDelay {
		return false
	}

	f.elapsed = 0
	f.pos = f.path[0]
	f.path = f.path[1:]
	f.steps++
	return true
}
