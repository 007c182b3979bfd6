package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver/internal/bench"
	"github.com/seamusw/cubesolver/internal/solver"
	"github.com/seamusw/cubesolver/internal/storage"
)

var (
	benchTrials   int
	benchWorkers  int
	benchMaxDepth int
	benchSave     bool
	benchNotes    string
	benchLimit    int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the search strategies",
	Long:  `Commands for running and inspecting solver benchmarks.`,
}

var benchRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark suite",
	Long: `Run every solver strategy against a set of canned scrambles of
increasing difficulty and print per-(scramble, solver) statistics.

Trials are independent solver invocations and run in parallel across
workers. Use --save to record the results in the database.`,
	RunE: runBenchRun,
}

var benchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved benchmark runs",
	RunE:  runBenchList,
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.AddCommand(benchRunCmd)
	benchCmd.AddCommand(benchListCmd)

	benchRunCmd.Flags().IntVar(&benchTrials, "trials", 3, "Trials per (scramble, solver) pair")
	benchRunCmd.Flags().IntVar(&benchWorkers, "workers", 0, "Parallel workers (0 = number of CPUs)")
	benchRunCmd.Flags().IntVar(&benchMaxDepth, "max-depth", 6, "Depth bound for every solve")
	benchRunCmd.Flags().BoolVar(&benchSave, "save", false, "Save results to the database")
	benchRunCmd.Flags().StringVar(&benchNotes, "notes", "", "Notes to store with the run")

	benchListCmd.Flags().IntVar(&benchLimit, "limit", 10, "Maximum number of runs to list")
}

func runBenchRun(cmd *cobra.Command, args []string) error {
	runner := &bench.Runner{
		Solvers:  []solver.Solver{solver.BFS{}, solver.AStar{}},
		Trials:   benchTrials,
		Workers:  benchWorkers,
		MaxDepth: benchMaxDepth,
	}

	fmt.Printf("Running %d trials per case across %d cases...\n", benchTrials, len(bench.DefaultCases))
	results, err := runner.Run()
	if err != nil {
		return err
	}

	printSummaries(bench.Summarize(results))

	if verbose {
		fmt.Println()
		for _, r := range results {
			fmt.Printf("  %-12s %-6s trial %d: found=%-5v len=%-2d nodes=%-7d %v\n",
				r.CaseName, r.Solver, r.Trial, r.Found, r.SolutionLen, r.Nodes, r.Elapsed)
		}
	}

	if !benchSave {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.MigrateUp(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	repo := storage.NewRunRepository(db)
	runID, err := repo.Create(benchNotes, benchMaxDepth, benchTrials, benchWorkers)
	if err != nil {
		return err
	}
	if err := repo.SaveTrials(runID, results); err != nil {
		return err
	}

	fmt.Printf("\nSaved run %s\n", runID)
	return nil
}

func printSummaries(summaries []bench.Summary) {
	fmt.Println()
	fmt.Printf("%-12s %-6s %7s %7s %10s %12s %12s\n",
		"CASE", "SOLVER", "OK", "MINLEN", "AVG NODES", "AVG TIME", "MAX TIME")
	for _, s := range summaries {
		minLen := "-"
		if s.MinLen >= 0 {
			minLen = fmt.Sprintf("%d", s.MinLen)
		}
		fmt.Printf("%-12s %-6s %3d/%-3d %7s %10.0f %12v %12v\n",
			s.CaseName, s.Solver, s.Successes, s.Trials, minLen,
			s.MeanNodes, s.MeanTime.Round(time.Microsecond), s.MaxTime.Round(time.Microsecond))
	}
}

func runBenchList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.MigrateUp(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	runs, err := storage.NewRunRepository(db).List(benchLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No saved benchmark runs")
		return nil
	}

	fmt.Printf("%-36s %-20s %9s %6s %7s  %s\n", "RUN", "CREATED", "MAX DEPTH", "TRIALS", "WORKERS", "NOTES")
	for _, r := range runs {
		notes := ""
		if r.Notes != nil {
			notes = *r.Notes
		}
		fmt.Printf("%-36s %-20s %9d %6d %7d  %s\n",
			r.RunID, r.CreatedAt.Format(time.RFC3339), r.MaxDepth, r.Trials, r.Workers, notes)
	}

	return nil
}
