// Package solver implements depth-bounded search strategies that find move
// sequences restoring a cube to a solved state.
package solver

import (
	"time"

	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/pkg/types"
)

// Result reports the outcome of one solve invocation. A search that
// exhausts its depth bound is not an error: it comes back with Found false
// and the exploration statistics intact.
type Result struct {
	Found         bool
	Moves         []types.Move
	NodesExplored int
	Elapsed       time.Duration
}

// Solver is a depth-bounded search strategy. Implementations never mutate
// the caller's cube; each invocation owns its own frontier, visited set and
// parent-link table, so independent invocations may run concurrently.
type Solver interface {
	// Name identifies the strategy, e.g. in benchmark output.
	Name() string
	// Solve searches for a move sequence of at most maxDepth moves that
	// brings the cube to a solved state.
	Solve(c *cube.Cube, maxDepth int) Result
}

// parentLink records how a state was reached: the key of the state it was
// expanded from and the move that produced it. The table of these links is
// the primary memory cost of a search.
type parentLink struct {
	parent cube.Key
	move   types.Move
}

// reconstructPath walks the parent-link table from the goal key back to the
// root (the first key with no entry) and returns the moves in application
// order.
func reconstructPath(goal cube.Key, cameFrom map[cube.Key]parentLink) []types.Move {
	var path []types.Move
	cur := goal
	for {
		link, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, link.move)
		cur = link.parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// neighbors invokes fn for each of the 12 states one quarter turn away from
// c, in types.AllMoves order. next is a fresh copy on every call and never
// aliases c, so fn may retain it. Returning false stops the enumeration.
func neighbors(c *cube.Cube, fn func(m types.Move, next *cube.Cube) bool) {
	for _, m := range types.AllMoves {
		next := *c
		next.ApplyMove(m)
		if !fn(m, &next) {
			return
		}
	}
}
