package planning

import "math"

// Progress derives the completion percentage for one tally. A project with
// no tasks reports 0, and the result is always within 0..100.
func Progress(tally TaskTally) int {
	if tally.Total <= 0 {
		return 0
	}
	pct := int(math.Round(float64(tally.Completed) / float64(tally.Total) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// OverallProgress derives the completion percentage across tallies, weighted
// by task count rather than averaging per-project percentages.
func OverallProgress(tallies []TaskTally) int {
	var sum TaskTally
	for _, t := range tallies {
		sum.Total += t.Total
		sum.Completed += t.Completed
	}
	return Progress(sum)
}
