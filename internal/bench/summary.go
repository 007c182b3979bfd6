package bench

import "time"

// Summary aggregates the trials of one (case, solver) pair.
type Summary struct {
	CaseName  string
	Solver    string
	Trials    int
	Successes int
	MinLen    int // shortest solution found, -1 when no trial succeeded
	MeanNodes float64
	MeanTime  time.Duration
	MinTime   time.Duration
	MaxTime   time.Duration
}

// Summarize groups trial results by (case, solver) in order of first
// appearance and computes per-group statistics.
func Summarize(results []TrialResult) []Summary {
	type groupKey struct{ caseName, solver string }

	index := make(map[groupKey]int)
	var summaries []Summary

	for _, r := range results {
		k := groupKey{r.CaseName, r.Solver}
		i, ok := index[k]
		if !ok {
			i = len(summaries)
			index[k] = i
			summaries = append(summaries, Summary{
				CaseName: r.CaseName,
				Solver:   r.Solver,
				MinLen:   -1,
				MinTime:  r.Elapsed,
			})
		}

		s := &summaries[i]
		s.Trials++
		s.MeanNodes += float64(r.Nodes)
		s.MeanTime += r.Elapsed
		if r.Elapsed < s.MinTime {
			s.MinTime = r.Elapsed
		}
		if r.Elapsed > s.MaxTime {
			s.MaxTime = r.Elapsed
		}
		if r.Found {
			s.Successes++
			if s.MinLen < 0 || r.SolutionLen < s.MinLen {
				s.MinLen = r.SolutionLen
			}
		}
	}

	for i := range summaries {
		s := &summaries[i]
		if s.Trials > 0 {
			s.MeanNodes /= float64(s.Trials)
			s.MeanTime /= time.Duration(s.Trials)
		}
	}

	return summaries
}
