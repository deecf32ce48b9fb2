package demo

import (
	"fmt"

	"github.com/vovakirdan/tui-pathfind/internal/core"
	"github.com/vovakirdan/tui-pathfind/internal/grid"
)

// Tile glyphs. Only the first column of a tile carries a marker; the rest
// of the tile is padding or, for solid tiles, more fill.
const (
	glyphEmpty    = '·'
	glyphObstacle = '▓'
	glyphBlink    = '█'
	glyphPlayer   = '█'
	glyphTrace    = '•'
	glyphGoal     = '◆'
)

// Render draws the current state into dst. It does not modify the demo.
func (d *Demo) Render(dst *core.Screen) {
	dst.Clear()

	d.renderHUD(dst)

	if d.tooSmall {
		need := fmt.Sprintf("Need %dx%d", d.grid.W*d.cfg.Tile.Width, d.grid.H*d.cfg.Tile.Height+hudHeight)
		d.renderOverlay(dst, "Window too small", need)
		return
	}

	d.renderGrid(dst)
	if d.showTrace {
		d.renderTrace(dst)
	}
	d.renderPlayer(dst)

	if d.paused {
		d.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status line and separator.
func (d *Demo) renderHUD(dst *core.Screen) {
	pos := d.follower.Position()
	hud := fmt.Sprintf(" %s | Pos %v  Left %d  Steps %d", d.Title(), pos, len(d.follower.Remaining()), d.follower.Steps())
	if d.searched {
		hud += fmt.Sprintf("  Goal %v  Expanded %d", d.lastGoal, d.lastSearch.Expanded)
		if !d.lastSearch.Found() && d.lastGoal != pos {
			hud += "  (no path)"
		}
	}
	if cell, ok := d.blink.Active(); ok {
		hud += fmt.Sprintf("  Blocked %v", cell)
	}
	dst.DrawTextColored(0, 0, hud, d.palette.HUD)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderGrid draws empty tiles and obstacles.
func (d *Demo) renderGrid(dst *core.Screen) {
	blinkCell, blinking := d.blink.Active()

	for _, c := range d.grid.Cells() {
		r := d.TileRect(c)
		switch {
		case blinking && c == blinkCell:
			dst.FillRect(r, glyphBlink, d.palette.Blink)
		case d.obstacles.Has(c):
			dst.FillRect(r, glyphObstacle, d.palette.Obstacle)
		default:
			dst.SetColored(r.X, r.Y, glyphEmpty, d.palette.Grid)
		}
	}
}

// renderTrace marks the cells still to be walked, and the goal.
func (d *Demo) renderTrace(dst *core.Screen) {
	for _, c := range d.follower.Remaining() {
		r := d.TileRect(c)
		dst.SetColored(r.X, r.Y, glyphTrace, d.palette.Path)
	}
	if goal, ok := d.follower.Goal(); ok && d.cfg.Display.ShowGoal {
		r := d.TileRect(goal)
		dst.SetColored(r.X, r.Y, glyphGoal, d.palette.Goal)
	}
}

// renderPlayer fills the agent's tile.
func (d *Demo) renderPlayer(dst *core.Screen) {
	dst.FillRect(d.TileRect(d.follower.Position()), glyphPlayer, d.palette.Player)
}

// renderOverlay draws a centered two-line message box.
func (d *Demo) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	screen := core.NewRect(0, 0, dst.Width(), dst.Height())
	box := screen.CenteredIn(maxLen+4, 5)

	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// RenderASCII draws the grid alone, one character per cell, for headless
// output: '#' obstacle, '*' path, 'S' start, 'G' goal, '.' empty.
func RenderASCII(g grid.Grid, obstacles grid.ObstacleSet, start grid.Cell, path []grid.Cell) *core.Screen {
	dst := core.NewScreen(g.W, g.H)
	for _, c := range g.Cells() {
		if obstacles.Has(c) {
			dst.Set(c.X, c.Y, '#')
		} else {
			dst.Set(c.X, c.Y, '.')
		}
	}
	for _, c := range path {
		dst.Set(c.X, c.Y, '*')
	}
	if len(path) > 0 {
		goal := path[len(path)-1]
		dst.Set(goal.X, goal.Y, 'G')
	}
	dst.Set(start.X, start.Y, 'S')
	return dst
}
