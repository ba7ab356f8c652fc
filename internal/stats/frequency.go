package stats

import (
	"sort"

	"github.com/verte-zerg/lotto/internal/model"
)

func computeFrequency(window []model.Draw, cfg model.Config) FrequencyStats {
	all := make(map[int]int, cfg.Pool)
	for n := 1; n <= cfg.Pool; n++ {
		all[n] = 0
	}
	for _, d := range window {
		for _, n := range d.Numbers {
			all[n]++
		}
	}

	counts := make([]NumberCount, 0, cfg.Pool)
	for n := 1; n <= cfg.Pool; n++ {
		counts = append(counts, NumberCount{Number: n, Count: all[n]})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	top := cfg.TopRange
	if top > len(counts) {
		top = len(counts)
	}

	var highlighted []int
	if cfg.HighlightMin > 0 {
		for n := 1; n <= cfg.Pool; n++ {
			if all[n] >= cfg.HighlightMin {
				highlighted = append(highlighted, n)
			}
		}
	}

	return FrequencyStats{
		All:         all,
		Top:         counts[:top],
		Highlighted: highlighted,
	}
}
