package validate

import (
	"sort"

	"github.com/verte-zerg/lotto/internal/model"
	"github.com/verte-zerg/lotto/internal/stats"
)

// NumberStatus classifies one number of a supplied draw against history.
type NumberStatus struct {
	Band      string `json:"band"`
	Frequency int    `json:"frequency"`
}

// LatestReport classifies every number of an externally supplied draw.
type LatestReport struct {
	Numbers  []int                `json:"numbers"`
	Analysis map[int]NumberStatus `json:"analysis"`
}

// Latest reports the temperature band and historical frequency of each
// number in the supplied draw. Read-only; it mutates nothing.
func Latest(numbers []int, report stats.Report, cfg model.Config) LatestReport {
	sorted := make([]int, len(numbers))
	copy(sorted, numbers)
	sort.Ints(sorted)

	analysis := make(map[int]NumberStatus, len(sorted))
	for _, n := range sorted {
		analysis[n] = NumberStatus{
			Band:      stats.Band(report.Temperature.Recency[n], cfg),
			Frequency: report.Frequency.All[n],
		}
	}
	return LatestReport{Numbers: sorted, Analysis: analysis}
}
