package pathfind

import "github.com/vovakirdan/tui-pathfind/internal/grid"

// entry is a frontier item: a cell and the f-score it was pushed with.
// A cell may appear several times with different scores.
type entry struct {
	f    int
	cell grid.Cell
}

// frontier implements heap.Interface as a min-heap on (f, cell).
type frontier []entry

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].cell.Less(q[j].cell)
}

func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontier) Push(x any) {
	*q = append(*q, x.(entry))
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
