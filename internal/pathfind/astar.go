// Package pathfind finds shortest 4-connected paths on a grid with A*.
//
// The frontier is push-only: improving a cell's cost pushes a fresh entry and
// leaves the old one in the heap. Stale entries are popped and expanded again;
// only the cost map is trusted.
package pathfind

import (
	"container/heap"

	"github.com/vovakirdan/tui-pathfind/internal/grid"
)

// Result contains the outcome of a search.
type Result struct {
	// Path runs from the cell after start up to and including goal.
	// Empty when goal is unreachable or equals start.
	Path []grid.Cell

	// Expanded counts frontier pops, stale duplicates included.
	Expanded int

	// Pushed counts frontier pushes, the seed included.
	Pushed int
}

// Found reports whether the search produced at least one step.
func (r Result) Found() bool {
	return len(r.Path) > 0
}

// Heuristic is the Manhattan distance between a and b.
func Heuristic(a, b grid.Cell) int {
	return a.Manhattan(b)
}

// FindPath returns a shortest path from start to goal that avoids obstacles,
// excluding start and including goal. It returns an empty slice when no path
// exists or when goal equals start.
func FindPath(g grid.Grid, obstacles grid.ObstacleSet, start, goal grid.Cell) []grid.Cell {
	return Search(g, obstacles, start, goal).Path
}

// Search runs A* from start to goal and reports the path with search counters.
func Search(g grid.Grid, obstacles grid.ObstacleSet, start, goal grid.Cell) Result {
	var res Result

	open := make(frontier, 0, g.Size())
	heap.Push(&open, entry{f: Heuristic(start, goal), cell: start})
	res.Pushed++

	origin := make(map[grid.Cell]grid.Cell)
	cost := map[grid.Cell]int{start: 0}

	for open.Len() > 0 {
		current := heap.Pop(&open).(entry).cell
		res.Expanded++

		if current == goal {
			res.Path = reconstruct(origin, current)
			return res
		}

		for _, next := range g.Neighbors4(current) {
			if obstacles.Has(next) {
				continue
			}

			tentative := cost[current] + 1
			if best, seen := cost[next]; seen && tentative >= best {
				continue
			}
			origin[next] = current
			cost[next] = tentative
			heap.Push(&open, entry{f: tentative + Heuristic(next, goal), cell: next})
			res.Pushed++
		}
	}

	res.Path = []grid.Cell{}
	return res
}

// reconstruct follows origin links back from current until a cell without a
// predecessor (the start), then reverses. The start itself is not included.
func reconstruct(origin map[grid.Cell]grid.Cell, current grid.Cell) []grid.Cell {
	path := []grid.Cell{}
	for {
		prev, ok := origin[current]
		if !ok {
			break
		}
		path = append(path, current)
		current = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
