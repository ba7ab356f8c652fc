package stats

import (
	"sort"

	"github.com/verte-zerg/lotto/internal/model"
)

// AdjacentGaps returns the consecutive differences of the numbers in
// ascending order.
func AdjacentGaps(numbers []int) []int {
	if len(numbers) < 2 {
		return nil
	}
	sorted := make([]int, len(numbers))
	copy(sorted, numbers)
	sort.Ints(sorted)
	gaps := make([]int, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gaps[i-1] = sorted[i] - sorted[i-1]
	}
	return gaps
}

func computeGaps(window []model.Draw, cfg model.Config) GapStats {
	counts := map[int]int{}
	gapSums := map[int]int{}
	gapLens := map[int]int{}

	for _, d := range window {
		sorted := make([]int, len(d.Numbers))
		copy(sorted, d.Numbers)
		sort.Ints(sorted)
		for i := 1; i < len(sorted); i++ {
			gap := sorted[i] - sorted[i-1]
			counts[gap]++
			// Gaps are attributed to their larger endpoint; the smallest
			// number of a draw contributes nothing.
			gapSums[sorted[i]] += gap
			gapLens[sorted[i]]++
		}
	}

	avg := make(map[int]float64, len(gapSums))
	var overdue []int
	for n, total := range gapSums {
		avg[n] = float64(total) / float64(gapLens[n])
		if avg[n] > cfg.GapThreshold {
			overdue = append(overdue, n)
		}
	}
	sort.Ints(overdue)

	return GapStats{
		Counts:    counts,
		AvgGap:    avg,
		Overdue:   overdue,
		Threshold: cfg.GapThreshold,
	}
}
