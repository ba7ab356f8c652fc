package validate

import "github.com/verte-zerg/lotto/internal/model"

// MatchReport describes how a candidate set fared against a draw window.
type MatchReport struct {
	Numbers []int `json:"numbers"`
	// Distribution maps a match count (0..K) to the number of window draws
	// with exactly that many shared numbers. Every key is present.
	Distribution map[int]int `json:"match_distribution"`
	// SuccessRate is the fraction of window draws matching at least the
	// alert threshold.
	SuccessRate float64 `json:"success_rate"`
}

// Sets back-tests each candidate set against every draw in the window.
func Sets(sets [][]int, window []model.Draw, cfg model.Config) []MatchReport {
	reports := make([]MatchReport, 0, len(sets))
	for _, numbers := range sets {
		distribution := make(map[int]int, cfg.Select+1)
		for i := 0; i <= cfg.Select; i++ {
			distribution[i] = 0
		}
		candidate := make(map[int]bool, len(numbers))
		for _, n := range numbers {
			candidate[n] = true
		}

		hits := 0
		for _, d := range window {
			matches := 0
			for _, n := range d.Numbers {
				if candidate[n] {
					matches++
				}
			}
			distribution[matches]++
			if matches >= cfg.AlertThreshold {
				hits++
			}
		}

		rate := 0.0
		if len(window) > 0 {
			rate = float64(hits) / float64(len(window))
		}
		reports = append(reports, MatchReport{
			Numbers:      numbers,
			Distribution: distribution,
			SuccessRate:  rate,
		})
	}
	return reports
}
