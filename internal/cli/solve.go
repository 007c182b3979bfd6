package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/internal/notation"
	"github.com/seamusw/cubesolver/internal/render"
)

var (
	solveScramble string
	solveStrategy string
	solveMaxDepth int
	solveRender   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a scrambled cube",
	Long: `Scramble a solved cube with the given algorithm and search for a move
sequence that restores it, within the depth bound.

Strategies:
  bfs    - breadth-first search; the solution found is the shortest one
           reachable within the bound
  astar  - best-first search guided by the misplaced-sticker heuristic;
           usually explores fewer nodes but may return a longer solution`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "Scramble algorithm, e.g. \"R U R' U'\"")
	solveCmd.Flags().StringVar(&solveStrategy, "strategy", "bfs", "Search strategy: bfs or astar")
	solveCmd.Flags().IntVar(&solveMaxDepth, "max-depth", 6, "Maximum solution length to search for")
	solveCmd.Flags().BoolVar(&solveRender, "render", false, "Render the scrambled cube before solving")
}

func runSolve(cmd *cobra.Command, args []string) error {
	s, err := newSolver(solveStrategy)
	if err != nil {
		return err
	}

	c := cube.New()
	if err := c.ApplyAlgorithm(solveScramble); err != nil {
		return fmt.Errorf("invalid scramble: %w", err)
	}

	if solveRender {
		fmt.Println(render.Net(c.Faces()))
	}

	res := s.Solve(c, solveMaxDepth)

	if !res.Found {
		fmt.Printf("No solution within %d moves (%d nodes explored in %v)\n",
			solveMaxDepth, res.NodesExplored, res.Elapsed)
		return nil
	}

	if len(res.Moves) == 0 {
		fmt.Println("Cube is already solved")
	} else {
		fmt.Printf("Solution: %s\n", notation.FormatMoves(res.Moves))
		fmt.Printf("Length:   %d moves\n", len(res.Moves))
	}
	if verbose || len(res.Moves) > 0 {
		fmt.Printf("Explored: %d nodes in %v\n", res.NodesExplored, res.Elapsed)
	}

	if solveRender && len(res.Moves) > 0 {
		c.ApplyMoves(res.Moves)
		fmt.Println()
		fmt.Println(render.Net(c.Faces()))
	}

	return nil
}
