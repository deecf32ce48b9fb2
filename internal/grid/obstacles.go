package grid

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// ErrInvalidFraction is returned when an obstacle fraction lies outside [0, 1].
var ErrInvalidFraction = errors.New("grid: obstacle fraction must be within [0, 1]")

// ObstacleSet is the set of impassable cells.
type ObstacleSet map[Cell]struct{}

// NewObstacleSet builds a set from the given cells.
func NewObstacleSet(cells ...Cell) ObstacleSet {
	s := make(ObstacleSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether c is an obstacle. Safe on a nil set.
func (s ObstacleSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of obstacles.
func (s ObstacleSet) Len() int {
	return len(s)
}

// Cells returns the obstacles in row-major order.
func (s ObstacleSet) Cells() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// ObstacleCount returns how many obstacles a grid receives for fraction p:
// floor(p * (W*H - 1)), the start cell being excluded from the pool.
func ObstacleCount(g Grid, p float64) int {
	return int(p * float64(g.Size()-1))
}

// GenerateObstacles samples ObstacleCount(g, p) cells uniformly without
// replacement from every cell except start.
func GenerateObstacles(rng *rand.Rand, g Grid, start Cell, p float64) (ObstacleSet, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidFraction, p)
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v on %dx%d grid", ErrOutOfBounds, start, g.W, g.H)
	}

	pool := make([]Cell, 0, g.Size()-1)
	for _, c := range g.Cells() {
		if c != start {
			pool = append(pool, c)
		}
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	return NewObstacleSet(pool[:ObstacleCount(g, p)]...), nil
}
