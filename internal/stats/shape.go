package stats

import (
	"math"

	"github.com/verte-zerg/lotto/internal/model"
)

func computeOddEven(window []model.Draw) OddEvenStats {
	counts := map[int]int{}
	for _, d := range window {
		odds := 0
		for _, n := range d.Numbers {
			if n%2 == 1 {
				odds++
			}
		}
		counts[odds]++
	}
	return OddEvenStats{Counts: counts}
}

func computeSums(window []model.Draw) SumStats {
	if len(window) == 0 {
		return SumStats{}
	}
	sums := make([]int, len(window))
	for i, d := range window {
		for _, n := range d.Numbers {
			sums[i] += n
		}
	}

	stats := SumStats{Count: len(sums), Min: sums[0], Max: sums[0]}
	total := 0
	for _, s := range sums {
		if s < stats.Min {
			stats.Min = s
		}
		if s > stats.Max {
			stats.Max = s
		}
		total += s
	}
	stats.Mean = float64(total) / float64(len(sums))

	variance := 0.0
	for _, s := range sums {
		diff := float64(s) - stats.Mean
		variance += diff * diff
	}
	stats.StdDev = math.Sqrt(variance / float64(len(sums)))
	return stats
}

func computeHighLow(window []model.Draw, cfg model.Config) HighLowStats {
	stats := HighLowStats{
		LowMax: cfg.LowNumberMax,
		Counts: map[int]int{},
	}
	if cfg.LowNumberMax > cfg.Pool {
		stats.LowPoolSize = cfg.Pool
	} else {
		stats.LowPoolSize = cfg.LowNumberMax
	}
	stats.HighPoolSize = cfg.Pool - stats.LowPoolSize

	if len(window) == 0 {
		return stats
	}
	totalLow := 0
	for _, d := range window {
		low := 0
		for _, n := range d.Numbers {
			if n <= cfg.LowNumberMax {
				low++
			}
		}
		stats.Counts[low]++
		totalLow += low
	}
	stats.AvgLowPerDraw = float64(totalLow) / float64(len(window))
	return stats
}
