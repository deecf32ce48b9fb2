package follow

import (
	"time"

	"github.com/vovakirdan/tui-pathfind/internal/grid"
)

// Blink marks an obstacle that was just clicked. It clears itself once its
// remaining duration runs out.
type Blink struct {
	cell      grid.Cell
	remaining time.Duration
	active    bool
}

// Trigger (re)starts the blink on cell for the given duration.
func (b *Blink) Trigger(cell grid.Cell, d time.Duration) {
	b.cell = cell
	b.remaining = d
	b.active = d > 0
}

// Tick counts the blink down by dt.
func (b *Blink) Tick(dt time.Duration) {
	if !b.active {
		return
	}
	b.remaining -= dt
	if b.remaining <= 0 {
		b.Clear()
	}
}

// Clear removes the marker.
func (b *Blink) Clear() {
	*b = Blink{}
}

// Active returns the blinking cell, if any.
func (b *Blink) Active() (grid.Cell, bool) {
	return b.cell, b.active
}

// Remaining returns the time left before the marker clears.
func (b *Blink) Remaining() time.Duration {
	return b.remaining
}
