package config

import "github.com/verte-zerg/lotto/internal/model"

// DefaultDateLayout parses dates like 03/14/24 in historical CSVs.
const DefaultDateLayout = "01/02/06"

// Defaults returns the built-in configuration.
func Defaults() model.Config {
	return model.Config{
		Pool:   55,
		Select: 6,

		FrequencyWeight: 0.4,
		RecentWeight:    0.2,
		RandomWeight:    0.4,

		LowNumberMax: 10,
		HighPrimeMin: 35,

		RecencyHot:  3,
		RecencyWarm: 10,
		RecencyCold: 30,

		TopRange:     10,
		HighlightMin: 5,

		CombinationSizes: map[int]bool{
			2: true,
			3: true,
			4: false,
			5: false,
			6: false,
		},
		MinCombinationCount: 2,

		GapAnalysis:  true,
		GapThreshold: 5,

		OddMin: 2,
		OddMax: 4,
		SumMin: 100,
		SumMax: 200,

		GapValidation:   false,
		MaxAvgGap:       12,
		MaxSingleGap:    25,
		MinDistinctGaps: 3,

		OverdueInclusion: false,
		OverdueMin:       0,
		OverdueMax:       2,

		TestDraws:      120,
		AlertThreshold: 4,

		SetsToGenerate: 4,
		Attempts:       1000,

		ResultsDir: DefaultResultsDir(),
	}
}
