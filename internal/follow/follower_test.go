package follow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pathfind/internal/grid"
)

const delay = 100 * time.Millisecond

func TestFollowerStartsIdle(t *testing.T) {
	f := New(grid.C(2, 3), delay)

	assert.Equal(t, Idle, f.State())
	assert.Equal(t, grid.C(2, 3), f.Position())
	assert.False(t, f.Advance(time.Second), "idle follower must not move")
	assert.Equal(t, grid.C(2, 3), f.Position())
}

func TestFollowerWalksPath(t *testing.T) {
	f := New(grid.C(0, 0), delay)
	f.Assign([]grid.Cell{grid.C(1, 0), grid.C(2, 0), grid.C(2, 1)})
	require.Equal(t, Following, f.State())

	goal, ok := f.Goal()
	require.True(t, ok)
	assert.Equal(t, grid.C(2, 1), goal)

	assert.False(t, f.Advance(50*time.Millisecond))
	assert.True(t, f.Advance(50*time.Millisecond))
	assert.Equal(t, grid.C(1, 0), f.Position())

	assert.True(t, f.Advance(delay))
	assert.Equal(t, grid.C(2, 0), f.Position())

	assert.True(t, f.Advance(delay))
	assert.Equal(t, grid.C(2, 1), f.Position())
	assert.Equal(t, Idle, f.State())
	assert.Equal(t, 3, f.Steps())
}

func TestFollowerOneStepPerTick(t *testing.T) {
	f := New(grid.C(0, 0), delay)
	f.Assign([]grid.Cell{grid.C(1, 0), grid.C(2, 0)})

	// A huge frame still only moves one cell.
	assert.True(t, f.Advance(10*delay))
	assert.Equal(t, grid.C(1, 0), f.Position())
	assert.Len(t, f.Remaining(), 1)
}

func TestFollowerCadence(t *testing.T) {
	const frame = 20 * time.Millisecond // five frames per step

	for n := 1; n <= 12; n++ {
		f := New(grid.C(0, 0), delay)
		path := make([]grid.Cell, n)
		for i := range path {
			path[i] = grid.C(i+1, 0)
		}
		f.Assign(path)

		var elapsed time.Duration
		for f.State() == Following {
			f.Advance(frame)
			elapsed += frame
			require.LessOrEqual(t, elapsed, time.Duration(n)*delay+frame, "path of %d never finished", n)
		}

		assert.GreaterOrEqual(t, elapsed, time.Duration(n-1)*delay, "n=%d finished too early", n)
		assert.LessOrEqual(t, elapsed, time.Duration(n)*delay, "n=%d finished too late", n)
		assert.Equal(t, grid.C(n, 0), f.Position())
	}
}

func TestFollowerIdleAccumulatorStepsImmediately(t *testing.T) {
	f := New(grid.C(0, 0), delay)
	f.Advance(time.Second) // idle time accumulates

	f.Assign([]grid.Cell{grid.C(0, 1)})
	assert.True(t, f.Advance(time.Millisecond), "accumulated idle time should allow an immediate step")
	assert.Equal(t, grid.C(0, 1), f.Position())
}

func TestFollowerAssignReplacesPath(t *testing.T) {
	f := New(grid.C(0, 0), delay)
	f.Assign([]grid.Cell{grid.C(1, 0), grid.C(2, 0), grid.C(3, 0)})
	f.Advance(delay)
	require.Equal(t, grid.C(1, 0), f.Position())

	f.Assign([]grid.Cell{grid.C(1, 1)})
	assert.Equal(t, []grid.Cell{grid.C(1, 1)}, f.Remaining())

	f.Advance(delay)
	assert.Equal(t, grid.C(1, 1), f.Position())
	assert.Equal(t, Idle, f.State())

	f.Assign(nil)
	assert.Equal(t, Idle, f.State())
}

func TestFollowerAssignCopiesInput(t *testing.T) {
	path := []grid.Cell{grid.C(1, 0), grid.C(2, 0)}
	f := New(grid.C(0, 0), delay)
	f.Assign(path)

	path[0] = grid.C(9, 9)
	f.Advance(delay)
	assert.Equal(t, grid.C(1, 0), f.Position())
}

func TestBlinkLifecycle(t *testing.T) {
	const full = 330 * time.Millisecond
	var b Blink

	_, ok := b.Active()
	require.False(t, ok)

	b.Trigger(grid.C(3, 2), full)
	cell, ok := b.Active()
	require.True(t, ok)
	assert.Equal(t, grid.C(3, 2), cell)
	assert.Equal(t, full, b.Remaining())

	for elapsed := time.Duration(0); elapsed < full-30*time.Millisecond; elapsed += 30 * time.Millisecond {
		b.Tick(30 * time.Millisecond)
		_, ok = b.Active()
		require.True(t, ok, "blink cleared early at %v", elapsed)
	}

	b.Tick(30 * time.Millisecond)
	_, ok = b.Active()
	assert.False(t, ok, "blink should clear after its full duration")
}

func TestBlinkRetrigger(t *testing.T) {
	var b Blink
	b.Trigger(grid.C(1, 1), 100*time.Millisecond)
	b.Tick(90 * time.Millisecond)
	b.Trigger(grid.C(2, 2), 100*time.Millisecond)
	b.Tick(90 * time.Millisecond)

	cell, ok := b.Active()
	require.True(t, ok)
	assert.Equal(t, grid.C(2, 2), cell)
}
