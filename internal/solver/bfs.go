package solver

import (
	"time"

	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/pkg/types"
)

// BFS is the uninformed breadth-first strategy. Because the frontier is
// expanded level by level and every move costs one, the first solution
// found is of minimum move count among all solutions within the bound.
type BFS struct{}

// Name implements Solver.
func (BFS) Name() string { return "bfs" }

// bfsNode is one frontier entry: an owned state snapshot and its depth.
type bfsNode struct {
	c     cube.Cube
	depth int
}

// Solve implements Solver.
func (BFS) Solve(start *cube.Cube, maxDepth int) Result {
	began := time.Now()

	if start.IsSolved() {
		return Result{Found: true, Moves: []types.Move{}, Elapsed: time.Since(began)}
	}

	root := *start // own copy, the caller's cube is never touched
	queue := []bfsNode{{c: root, depth: 0}}
	visited := map[cube.Key]struct{}{root.Key(): {}}
	cameFrom := make(map[cube.Key]parentLink)
	explored := 0

	for head := 0; head < len(queue); head++ {
		cur := queue[head] // copy: appends below may grow the backing array
		explored++

		// At the bound the node is discarded without expansion. Solved
		// states never reach here: they are detected when generated.
		if cur.depth >= maxDepth {
			continue
		}

		curKey := cur.c.Key()
		var solved *cube.Key
		neighbors(&cur.c, func(m types.Move, next *cube.Cube) bool {
			k := next.Key()
			if next.IsSolved() {
				cameFrom[k] = parentLink{parent: curKey, move: m}
				solved = &k
				return false
			}
			if _, seen := visited[k]; !seen {
				visited[k] = struct{}{}
				cameFrom[k] = parentLink{parent: curKey, move: m}
				queue = append(queue, bfsNode{c: *next, depth: cur.depth + 1})
			}
			return true
		})
		if solved != nil {
			return Result{
				Found:         true,
				Moves:         reconstructPath(*solved, cameFrom),
				NodesExplored: explored,
				Elapsed:       time.Since(began),
			}
		}
	}

	// Frontier exhausted: no solution within maxDepth moves. This says
	// nothing about solvability beyond the bound.
	return Result{NodesExplored: explored, Elapsed: time.Since(began)}
}
