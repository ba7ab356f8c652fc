// Package model defines shared data structures.
package model

import "time"

// Draw is one historical lottery outcome.
type Draw struct {
	Index   int
	Date    time.Time
	Numbers []int
}

// Config holds resolved strategy and analysis settings.
type Config struct {
	Pool   int
	Select int

	FrequencyWeight float64
	RecentWeight    float64
	RandomWeight    float64

	LowNumberMax int
	HighPrimeMin int

	RecencyHot  int
	RecencyWarm int
	RecencyCold int

	TopRange     int
	HighlightMin int

	CombinationSizes    map[int]bool
	MinCombinationCount int

	GapAnalysis  bool
	GapThreshold float64

	OddMin int
	OddMax int
	SumMin int
	SumMax int

	GapValidation   bool
	MaxAvgGap       float64
	MaxSingleGap    int
	MinDistinctGaps int

	OverdueInclusion bool
	OverdueMin       int
	OverdueMax       int

	TestDraws      int
	AlertThreshold int

	SetsToGenerate int
	Attempts       int

	ResultsDir string
}

// ImportConfig describes how to parse a historical draws CSV.
type ImportConfig struct {
	DateLayout string
	HasHeader  bool
}
