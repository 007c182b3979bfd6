package solver

import (
	"testing"

	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/internal/notation"
)

// scrambled returns a fresh cube with the given algorithm applied.
func scrambled(t *testing.T, alg string) *cube.Cube {
	t.Helper()
	c := cube.New()
	if err := c.ApplyAlgorithm(alg); err != nil {
		t.Fatalf("scramble %q: %v", alg, err)
	}
	return c
}

// assertSolves verifies that applying the returned moves to the scrambled
// state yields a solved cube.
func assertSolves(t *testing.T, c *cube.Cube, res Result) {
	t.Helper()
	if !res.Found {
		t.Fatal("expected a solution")
	}
	check := c.Clone()
	check.ApplyMoves(res.Moves)
	if !check.IsSolved() {
		t.Errorf("solution %q does not solve the cube", notation.FormatMoves(res.Moves))
		t.Log(check.String())
	}
}

func TestBFS_AlreadySolved(t *testing.T) {
	res := BFS{}.Solve(cube.New(), 3)
	if !res.Found {
		t.Error("Solved input should report found")
	}
	if len(res.Moves) != 0 {
		t.Errorf("Solved input should need zero moves, got %d", len(res.Moves))
	}
	if res.NodesExplored != 0 {
		t.Errorf("Solved input should explore zero nodes, got %d", res.NodesExplored)
	}
}

func TestAStar_AlreadySolved(t *testing.T) {
	res := AStar{}.Solve(cube.New(), 3)
	if !res.Found {
		t.Error("Solved input should report found")
	}
	if len(res.Moves) != 0 {
		t.Errorf("Solved input should need zero moves, got %d", len(res.Moves))
	}
	if res.NodesExplored != 0 {
		t.Errorf("Solved input should explore zero nodes, got %d", res.NodesExplored)
	}
}

func TestBFS_TwoMoveScramble(t *testing.T) {
	c := scrambled(t, "F U")
	res := BFS{}.Solve(c, 2)
	if !res.Found {
		t.Fatalf("F U should be solvable within 2 moves (%d nodes)", res.NodesExplored)
	}
	if len(res.Moves) > 2 {
		t.Errorf("solution length %d exceeds 2", len(res.Moves))
	}
	assertSolves(t, c, res)
}

func TestBFS_FindsMinimalSolution(t *testing.T) {
	// Scrambles with known exact distance from solved.
	tests := []struct {
		alg  string
		dist int
	}{
		{"", 0},
		{"F", 1},
		{"F U", 2},
		{"F U R", 3},
	}

	for _, tt := range tests {
		c := scrambled(t, tt.alg)
		res := BFS{}.Solve(c, 4)
		if !res.Found {
			t.Errorf("scramble %q: no solution found", tt.alg)
			continue
		}
		if len(res.Moves) != tt.dist {
			t.Errorf("scramble %q: BFS found length %d, want exactly %d", tt.alg, len(res.Moves), tt.dist)
		}
		assertSolves(t, c, res)
	}
}

func TestBFS_SolverDoesNotMutateInput(t *testing.T) {
	c := scrambled(t, "F U")
	before := c.Key()
	BFS{}.Solve(c, 2)
	if c.Key() != before {
		t.Error("Solve must not mutate the caller's cube")
	}
}

func TestBFS_DepthBoundExhaustion(t *testing.T) {
	// F U R needs 3 moves; a bound of 2 must come up empty.
	c := scrambled(t, "F U R")
	res := BFS{}.Solve(c, 2)
	if res.Found {
		t.Error("3-move scramble should not solve within bound 2")
	}
	if res.NodesExplored == 0 {
		t.Error("exhausted search should report explored nodes")
	}
	if len(res.Moves) != 0 {
		t.Error("exhausted search should return no moves")
	}
}

func TestAStar_SolvesWithinBound(t *testing.T) {
	for _, alg := range []string{"F", "F U", "F U R", "R U R' U'"} {
		c := scrambled(t, alg)
		res := AStar{}.Solve(c, 6)
		if !res.Found {
			t.Errorf("scramble %q: A* found no solution within 6 moves", alg)
			continue
		}
		// The heuristic is not admissible, so only correctness and the
		// bound are guaranteed, not minimality.
		if len(res.Moves) > 6 {
			t.Errorf("scramble %q: solution length %d exceeds bound", alg, len(res.Moves))
		}
		assertSolves(t, c, res)
	}
}

func TestAStar_DepthBoundExhaustion(t *testing.T) {
	c := scrambled(t, "F U R")
	res := AStar{}.Solve(c, 2)
	if res.Found {
		t.Error("3-move scramble should not solve within bound 2")
	}
	if res.NodesExplored == 0 {
		t.Error("exhausted search should report explored nodes")
	}
}

func TestAStar_DeterministicExpansion(t *testing.T) {
	first := AStar{}.Solve(scrambled(t, "R U R' U'"), 6)
	second := AStar{}.Solve(scrambled(t, "R U R' U'"), 6)
	if notation.FormatMoves(first.Moves) != notation.FormatMoves(second.Moves) {
		t.Errorf("A* should be deterministic: %q vs %q",
			notation.FormatMoves(first.Moves), notation.FormatMoves(second.Moves))
	}
	if first.NodesExplored != second.NodesExplored {
		t.Errorf("A* exploration should be deterministic: %d vs %d nodes",
			first.NodesExplored, second.NodesExplored)
	}
}

func TestSolvers_ShareSignature(t *testing.T) {
	// Both strategies must be interchangeable behind the Solver interface.
	for _, s := range []Solver{BFS{}, AStar{}} {
		c := scrambled(t, "F")
		res := s.Solve(c, 2)
		if !res.Found {
			t.Errorf("%s: single-move scramble should solve within 2", s.Name())
		}
		assertSolves(t, c, res)
	}
}
