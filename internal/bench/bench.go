// Package bench drives solver strategies over canned scrambles and
// aggregates timing and exploration statistics.
package bench

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/internal/notation"
	"github.com/seamusw/cubesolver/internal/solver"
)

// Case is a named scramble to benchmark against.
type Case struct {
	Name      string
	Algorithm string
}

// DefaultCases are scrambles of increasing difficulty, from an already
// solved cube up to a 7-move OLL algorithm.
var DefaultCases = []Case{
	{Name: "solved", Algorithm: ""},
	{Name: "single_move", Algorithm: "F"},
	{Name: "two_moves", Algorithm: "F U"},
	{Name: "sexy_move", Algorithm: "R U R' U'"},
	{Name: "oll_case", Algorithm: "R U R' U' R' F R F'"},
}

// TrialResult is the outcome of one solver invocation on one scramble.
type TrialResult struct {
	CaseName    string
	Scramble    string
	Solver      string
	Trial       int
	Found       bool
	SolutionLen int
	Solution    string
	Nodes       int
	Elapsed     time.Duration
}

// Runner executes Trials solves per (case, solver) pair. Solver invocations
// are independent — each trial scrambles its own cube — so trials fan out
// across Workers goroutines with no shared search state.
type Runner struct {
	Cases    []Case
	Solvers  []solver.Solver
	Trials   int
	MaxDepth int
	Workers  int
}

// Run executes the full benchmark matrix and returns one TrialResult per
// (case, solver, trial), in deterministic matrix order.
func (r *Runner) Run() ([]TrialResult, error) {
	cases := r.Cases
	if len(cases) == 0 {
		cases = DefaultCases
	}
	trials := r.Trials
	if trials < 1 {
		trials = 1
	}
	workers := r.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	// Validate scrambles up front so a bad algorithm fails the whole run
	// before any solver starts.
	for _, c := range cases {
		if _, err := notation.ParseAlgorithm(c.Algorithm); err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
	}

	type job struct {
		c      Case
		solver solver.Solver
		trial  int
		slot   int
	}

	jobs := make([]job, 0, len(cases)*len(r.Solvers)*trials)
	for _, c := range cases {
		for _, s := range r.Solvers {
			for t := 0; t < trials; t++ {
				jobs = append(jobs, job{c: c, solver: s, trial: t + 1, slot: len(jobs)})
			}
		}
	}

	results := make([]TrialResult, len(jobs))
	jobCh := make(chan job)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for j := range jobCh {
				results[j.slot] = runTrial(j.c, j.solver, j.trial, r.MaxDepth)
			}
		}()
	}
	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)
	wg.Wait()

	return results, nil
}

func runTrial(c Case, s solver.Solver, trial, maxDepth int) TrialResult {
	state := cube.New()
	// Scrambles were validated in Run; a failure here cannot happen.
	_ = state.ApplyAlgorithm(c.Algorithm)

	res := s.Solve(state, maxDepth)

	tr := TrialResult{
		CaseName: c.Name,
		Scramble: c.Algorithm,
		Solver:   s.Name(),
		Trial:    trial,
		Found:    res.Found,
		Nodes:    res.NodesExplored,
		Elapsed:  res.Elapsed,
	}
	if res.Found {
		tr.SolutionLen = len(res.Moves)
		tr.Solution = notation.FormatMoves(res.Moves)
	}
	return tr
}
