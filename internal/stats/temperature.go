package stats

import "github.com/verte-zerg/lotto/internal/model"

func computeTemperature(window []model.Draw, cfg model.Config) TemperatureStats {
	recency := make(map[int]int, cfg.Pool)
	for n := 1; n <= cfg.Pool; n++ {
		recency[n] = RecencyNever
	}
	for i, d := range window {
		// Later draws overwrite earlier ones, leaving draws-since-last.
		for _, n := range d.Numbers {
			recency[n] = len(window) - i - 1
		}
	}

	stats := TemperatureStats{Recency: recency}
	for n := 1; n <= cfg.Pool; n++ {
		r := recency[n]
		switch {
		case r != RecencyNever && r <= cfg.RecencyHot:
			stats.Hot = append(stats.Hot, n)
		case r != RecencyNever && r <= cfg.RecencyWarm:
			stats.Warm = append(stats.Warm, n)
		default:
			stats.Cold = append(stats.Cold, n)
		}
		if r == RecencyNever || r > cfg.RecencyCold {
			stats.Dormant = append(stats.Dormant, n)
		}
	}
	return stats
}

// Band returns the classification for a recency value under the same policy
// as computeTemperature.
func Band(recency int, cfg model.Config) string {
	switch {
	case recency != RecencyNever && recency <= cfg.RecencyHot:
		return "hot"
	case recency != RecencyNever && recency <= cfg.RecencyWarm:
		return "warm"
	default:
		return "cold"
	}
}
