// Package cli implements the command-line interface for cubesolver.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver/internal/solver"
	"github.com/seamusw/cubesolver/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolver",
	Short: "Rubik's Cube search solver",
	Long: `Cubesolver - a brute-force and heuristic search solver for the 3x3 Rubik's Cube.

Scramble a cube, solve it with breadth-first or A* search within a depth
bound, render the cube as a colored 2-D net, and benchmark the strategies
against each other.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubesolver/cubesolver.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// newSolver maps a strategy name to a solver.
func newSolver(strategy string) (solver.Solver, error) {
	switch strategy {
	case "bfs":
		return solver.BFS{}, nil
	case "astar", "a*":
		return solver.AStar{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want bfs or astar)", strategy)
	}
}

// openDB opens the database from the --db flag or the default location.
func openDB() (*storage.DB, error) {
	if dbPath != "" {
		return storage.Open(dbPath)
	}
	return storage.OpenDefault()
}
