// Package stats derives statistics from historical draw windows.
package stats

import (
	"time"

	"github.com/verte-zerg/lotto/internal/model"
)

// RecencyNever marks a number that did not appear anywhere in the window.
const RecencyNever = -1

// Report bundles every statistic computed over a draw window. Optional
// sections are nil when disabled by configuration.
type Report struct {
	Meta         Metadata          `json:"meta"`
	Frequency    FrequencyStats    `json:"frequency"`
	Temperature  TemperatureStats  `json:"temperature"`
	OddEven      OddEvenStats      `json:"odd_even"`
	Sums         SumStats          `json:"sums"`
	HighLow      HighLowStats      `json:"high_low"`
	Primes       PrimeStats        `json:"primes"`
	Gaps         *GapStats         `json:"gaps,omitempty"`
	Combinations *CombinationStats `json:"combinations,omitempty"`
}

// Metadata records the window the report was computed over.
type Metadata struct {
	DrawsAnalyzed int       `json:"draws_analyzed"`
	From          time.Time `json:"from,omitzero"`
	To            time.Time `json:"to,omitzero"`
}

// NumberCount pairs a number with its appearance count.
type NumberCount struct {
	Number int `json:"number"`
	Count  int `json:"count"`
}

// FrequencyStats counts number appearances across the window.
type FrequencyStats struct {
	// All maps every pool number to its appearance count.
	All map[int]int `json:"all"`
	// Top lists the highest counts, ties broken by ascending number.
	Top []NumberCount `json:"top"`
	// Highlighted lists numbers whose count reached the highlight threshold.
	Highlighted []int `json:"highlighted"`
}

// TemperatureStats classifies the pool by recency. Bands are contiguous and
// exhaustive: hot, then warm, then cold; Dormant is the subset of cold past
// the cold bin (including numbers never seen in the window).
type TemperatureStats struct {
	// Recency maps each number to draws since its last appearance
	// (0 = most recent draw, RecencyNever = absent from the window).
	Recency map[int]int `json:"recency"`
	Hot     []int       `json:"hot"`
	Warm    []int       `json:"warm"`
	Cold    []int       `json:"cold"`
	Dormant []int       `json:"dormant"`
}

// OddEvenStats maps odd-number counts per draw to draw counts.
type OddEvenStats struct {
	Counts map[int]int `json:"counts"`
}

// SumStats summarizes per-draw sums. All fields are zero when Count is zero.
// StdDev is the population standard deviation.
type SumStats struct {
	Count  int     `json:"count"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// HighLowStats partitions the pool at the low-number boundary.
type HighLowStats struct {
	LowMax        int         `json:"low_max"`
	LowPoolSize   int         `json:"low_pool_size"`
	HighPoolSize  int         `json:"high_pool_size"`
	AvgLowPerDraw float64     `json:"avg_low_per_draw"`
	Counts        map[int]int `json:"counts"`
}

// PrimeStats describes the prime subset of the pool.
type PrimeStats struct {
	Primes       []int       `json:"primes"`
	Frequency    map[int]int `json:"frequency"`
	PoolFraction float64     `json:"pool_fraction"`
}

// GapStats aggregates adjacent gaps of sorted draws.
type GapStats struct {
	// Counts maps a gap value to the number of times it occurred.
	Counts map[int]int `json:"counts"`
	// AvgGap maps a number to the mean gap in which it was the larger
	// endpoint. Numbers that were always the smallest of their draw have
	// no entry.
	AvgGap map[int]float64 `json:"avg_gap"`
	// Overdue lists numbers whose average gap exceeds the threshold.
	Overdue   []int   `json:"overdue"`
	Threshold float64 `json:"threshold"`
}

// CombinationStats counts sorted sub-combinations per enabled size.
// Keys use the form "a-b-c".
type CombinationStats struct {
	Sizes map[int]map[string]int `json:"sizes"`
}

// Compute derives every statistic for the window. It is a pure function of
// its inputs; an empty window yields zero-valued stats rather than an error.
func Compute(window []model.Draw, cfg model.Config) Report {
	report := Report{
		Meta:        computeMetadata(window),
		Frequency:   computeFrequency(window, cfg),
		Temperature: computeTemperature(window, cfg),
		OddEven:     computeOddEven(window),
		Sums:        computeSums(window),
		HighLow:     computeHighLow(window, cfg),
		Primes:      computePrimes(window, cfg),
	}
	if cfg.GapAnalysis {
		gaps := computeGaps(window, cfg)
		report.Gaps = &gaps
	}
	if anyCombinationEnabled(cfg) {
		combos := computeCombinations(window, cfg)
		report.Combinations = &combos
	}
	return report
}

func computeMetadata(window []model.Draw) Metadata {
	meta := Metadata{DrawsAnalyzed: len(window)}
	if len(window) > 0 {
		meta.From = window[0].Date
		meta.To = window[len(window)-1].Date
	}
	return meta
}
