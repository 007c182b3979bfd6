package solver

import (
	"container/heap"
	"time"

	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/pkg/types"
)

// AStar is the heuristic best-first strategy. It orders the frontier by
// f = g + Score, with g the move count from the root. Score is not
// admissible, so this is a greedy-informed search: solutions are valid but
// not guaranteed minimal.
type AStar struct{}

// Name implements Solver.
func (AStar) Name() string { return "astar" }

// aStarNode is one open-set entry. order is a monotone insertion counter
// that breaks f ties, making the expansion order deterministic regardless
// of heap internals.
type aStarNode struct {
	c     cube.Cube
	g     int
	f     int
	order int
}

type openSet []*aStarNode

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if s[i].f != s[j].f {
		return s[i].f < s[j].f
	}
	return s[i].order < s[j].order
}

func (s openSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x any) { *s = append(*s, x.(*aStarNode)) }

func (s *openSet) Pop() any {
	old := *s
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*s = old[:n-1]
	return node
}

// Solve implements Solver.
func (AStar) Solve(start *cube.Cube, maxDepth int) Result {
	began := time.Now()

	if start.IsSolved() {
		return Result{Found: true, Moves: []types.Move{}, Elapsed: time.Since(began)}
	}

	root := *start
	rootKey := root.Key()

	open := &openSet{{c: root, g: 0, f: Score(&root), order: 0}}
	heap.Init(open)
	counter := 1

	gScore := map[cube.Key]int{rootKey: 0}
	// A state enters the open set at most once; later g improvements only
	// rewrite its parent link and score. Entries popped with a stale g are
	// harmless duplicate work, not specially removed.
	pushed := map[cube.Key]struct{}{rootKey: {}}
	cameFrom := make(map[cube.Key]parentLink)
	explored := 0

	for open.Len() > 0 {
		item := heap.Pop(open).(*aStarNode)
		explored++

		curKey := item.c.Key()
		if item.c.IsSolved() {
			return Result{
				Found:         true,
				Moves:         reconstructPath(curKey, cameFrom),
				NodesExplored: explored,
				Elapsed:       time.Since(began),
			}
		}

		// The pop above still counts as explored; past the bound the node
		// generates no children.
		if item.g >= maxDepth {
			continue
		}

		tentative := gScore[curKey] + 1
		neighbors(&item.c, func(m types.Move, next *cube.Cube) bool {
			k := next.Key()
			if prev, ok := gScore[k]; !ok || tentative < prev {
				cameFrom[k] = parentLink{parent: curKey, move: m}
				gScore[k] = tentative
				if _, seen := pushed[k]; !seen {
					pushed[k] = struct{}{}
					heap.Push(open, &aStarNode{
						c:     *next,
						g:     item.g + 1,
						f:     tentative + Score(next),
						order: counter,
					})
					counter++
				}
			}
			return true
		})
	}

	return Result{NodesExplored: explored, Elapsed: time.Since(began)}
}
