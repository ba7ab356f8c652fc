// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/lotto/internal/model"
)

// FieldError reports a configuration field that is missing or out of domain.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("config field %s: %s", e.Field, e.Reason)
}

// FileConfig represents the TOML configuration file. Nil fields fall back to
// defaults.
type FileConfig struct {
	Data       DataConfig       `toml:"data"`
	Strategy   StrategyConfig   `toml:"strategy"`
	Analysis   AnalysisConfig   `toml:"analysis"`
	Validation ValidationConfig `toml:"validation"`
	Output     OutputConfig     `toml:"output"`
}

// DataConfig maps data-source settings.
type DataConfig struct {
	DateLayout *string `toml:"date-layout"`
	HasHeader  *bool   `toml:"has-header"`
	ResultsDir *string `toml:"results-dir"`
}

// StrategyConfig maps generation strategy settings.
type StrategyConfig struct {
	NumberPool      *int     `toml:"number-pool"`
	NumbersToSelect *int     `toml:"numbers-to-select"`
	FrequencyWeight *float64 `toml:"frequency-weight"`
	RecentWeight    *float64 `toml:"recent-weight"`
	RandomWeight    *float64 `toml:"random-weight"`
	LowNumberMax    *int     `toml:"low-number-max"`
	HighPrimeMin    *int     `toml:"high-prime-min"`
	Attempts        *int     `toml:"attempts"`
}

// AnalysisConfig maps analysis toggles and thresholds.
type AnalysisConfig struct {
	TopRange     *int                   `toml:"top-range"`
	HighlightMin *int                   `toml:"highlight-min"`
	RecencyBins  RecencyBinsConfig      `toml:"recency-bins"`
	Combinations CombinationsConfig     `toml:"combinations"`
	GapAnalysis  GapAnalysisConfig      `toml:"gap-analysis"`
	OddEven      OddEvenConfig          `toml:"odd-even"`
	SumRange     SumRangeConfig         `toml:"sum-range"`
	GapCheck     GapValidationConfig    `toml:"gap-validation"`
	Overdue      OverdueInclusionConfig `toml:"overdue-inclusion"`
}

// RecencyBinsConfig maps hot/warm/cold recency thresholds in draws.
type RecencyBinsConfig struct {
	Hot  *int `toml:"hot"`
	Warm *int `toml:"warm"`
	Cold *int `toml:"cold"`
}

// CombinationsConfig enables combination counting per subset size.
type CombinationsConfig struct {
	Pairs       *bool `toml:"pairs"`
	Triplets    *bool `toml:"triplets"`
	Quadruplets *bool `toml:"quadruplets"`
	Quintuplets *bool `toml:"quintuplets"`
	Sixtuplets  *bool `toml:"sixtuplets"`
	MinCount    *int  `toml:"min-count"`
}

// GapAnalysisConfig gates adjacent-gap statistics.
type GapAnalysisConfig struct {
	Enabled   *bool    `toml:"enabled"`
	Threshold *float64 `toml:"threshold"`
}

// OddEvenConfig bounds the odd-number count of a valid set.
type OddEvenConfig struct {
	MinOdds *int `toml:"min-odds"`
	MaxOdds *int `toml:"max-odds"`
}

// SumRangeConfig bounds the sum of a valid set.
type SumRangeConfig struct {
	Min *int `toml:"min"`
	Max *int `toml:"max"`
}

// GapValidationConfig gates gap constraints on generated sets.
type GapValidationConfig struct {
	Enabled         *bool    `toml:"enabled"`
	MaxAvgGap       *float64 `toml:"max-avg-gap"`
	MaxSingleGap    *int     `toml:"max-single-gap"`
	MinDistinctGaps *int     `toml:"min-distinct-gaps"`
}

// OverdueInclusionConfig gates overdue-number membership constraints.
type OverdueInclusionConfig struct {
	Enabled *bool `toml:"enabled"`
	Min     *int  `toml:"min"`
	Max     *int  `toml:"max"`
}

// ValidationConfig maps back-testing settings.
type ValidationConfig struct {
	TestDraws      *int `toml:"test-draws"`
	AlertThreshold *int `toml:"alert-threshold"`
}

// OutputConfig maps output settings.
type OutputConfig struct {
	SetsToGenerate *int `toml:"sets"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Resolve merges the file config over defaults and validates the result.
func (fc FileConfig) Resolve() (model.Config, error) {
	cfg := Defaults()

	applyInt(&cfg.Pool, fc.Strategy.NumberPool)
	applyInt(&cfg.Select, fc.Strategy.NumbersToSelect)
	applyFloat(&cfg.FrequencyWeight, fc.Strategy.FrequencyWeight)
	applyFloat(&cfg.RecentWeight, fc.Strategy.RecentWeight)
	applyFloat(&cfg.RandomWeight, fc.Strategy.RandomWeight)
	applyInt(&cfg.LowNumberMax, fc.Strategy.LowNumberMax)
	applyInt(&cfg.HighPrimeMin, fc.Strategy.HighPrimeMin)
	applyInt(&cfg.Attempts, fc.Strategy.Attempts)

	applyInt(&cfg.TopRange, fc.Analysis.TopRange)
	applyInt(&cfg.HighlightMin, fc.Analysis.HighlightMin)
	applyInt(&cfg.RecencyHot, fc.Analysis.RecencyBins.Hot)
	applyInt(&cfg.RecencyWarm, fc.Analysis.RecencyBins.Warm)
	applyInt(&cfg.RecencyCold, fc.Analysis.RecencyBins.Cold)

	applySize(cfg.CombinationSizes, 2, fc.Analysis.Combinations.Pairs)
	applySize(cfg.CombinationSizes, 3, fc.Analysis.Combinations.Triplets)
	applySize(cfg.CombinationSizes, 4, fc.Analysis.Combinations.Quadruplets)
	applySize(cfg.CombinationSizes, 5, fc.Analysis.Combinations.Quintuplets)
	applySize(cfg.CombinationSizes, 6, fc.Analysis.Combinations.Sixtuplets)
	applyInt(&cfg.MinCombinationCount, fc.Analysis.Combinations.MinCount)

	applyFlag(&cfg.GapAnalysis, fc.Analysis.GapAnalysis.Enabled)
	applyFloat(&cfg.GapThreshold, fc.Analysis.GapAnalysis.Threshold)

	applyInt(&cfg.OddMin, fc.Analysis.OddEven.MinOdds)
	applyInt(&cfg.OddMax, fc.Analysis.OddEven.MaxOdds)
	applyInt(&cfg.SumMin, fc.Analysis.SumRange.Min)
	applyInt(&cfg.SumMax, fc.Analysis.SumRange.Max)

	applyFlag(&cfg.GapValidation, fc.Analysis.GapCheck.Enabled)
	applyFloat(&cfg.MaxAvgGap, fc.Analysis.GapCheck.MaxAvgGap)
	applyInt(&cfg.MaxSingleGap, fc.Analysis.GapCheck.MaxSingleGap)
	applyInt(&cfg.MinDistinctGaps, fc.Analysis.GapCheck.MinDistinctGaps)

	applyFlag(&cfg.OverdueInclusion, fc.Analysis.Overdue.Enabled)
	applyInt(&cfg.OverdueMin, fc.Analysis.Overdue.Min)
	applyInt(&cfg.OverdueMax, fc.Analysis.Overdue.Max)

	applyInt(&cfg.TestDraws, fc.Validation.TestDraws)
	applyInt(&cfg.AlertThreshold, fc.Validation.AlertThreshold)
	applyInt(&cfg.SetsToGenerate, fc.Output.SetsToGenerate)
	applyString(&cfg.ResultsDir, fc.Data.ResultsDir)

	if err := Validate(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

// ResolveImport merges data-source settings over defaults.
func (fc FileConfig) ResolveImport() model.ImportConfig {
	imp := model.ImportConfig{DateLayout: DefaultDateLayout}
	applyString(&imp.DateLayout, fc.Data.DateLayout)
	applyFlag(&imp.HasHeader, fc.Data.HasHeader)
	return imp
}

// Validate checks cross-field domain constraints, failing on the first bad field.
func Validate(cfg model.Config) error {
	switch {
	case cfg.Select < 1:
		return &FieldError{Field: "strategy.numbers-to-select", Reason: "must be at least 1"}
	case cfg.Pool < cfg.Select:
		return &FieldError{Field: "strategy.number-pool", Reason: "must be at least numbers-to-select"}
	case cfg.LowNumberMax < 0 || cfg.LowNumberMax > cfg.Pool:
		return &FieldError{Field: "strategy.low-number-max", Reason: fmt.Sprintf("must be within [0, %d]", cfg.Pool)}
	case cfg.FrequencyWeight < 0 || cfg.RecentWeight < 0 || cfg.RandomWeight < 0:
		return &FieldError{Field: "strategy.*-weight", Reason: "weights must be non-negative"}
	case cfg.Attempts < 1:
		return &FieldError{Field: "strategy.attempts", Reason: "must be at least 1"}
	case cfg.TopRange < 1:
		return &FieldError{Field: "analysis.top-range", Reason: "must be at least 1"}
	case cfg.RecencyHot < 0:
		return &FieldError{Field: "analysis.recency-bins.hot", Reason: "must be non-negative"}
	case cfg.RecencyWarm < cfg.RecencyHot:
		return &FieldError{Field: "analysis.recency-bins.warm", Reason: "must be at least the hot bin"}
	case cfg.RecencyCold < cfg.RecencyWarm:
		return &FieldError{Field: "analysis.recency-bins.cold", Reason: "must be at least the warm bin"}
	case cfg.OddMin < 0 || cfg.OddMax > cfg.Select || cfg.OddMin > cfg.OddMax:
		return &FieldError{Field: "analysis.odd-even", Reason: fmt.Sprintf("bounds must satisfy 0 <= min <= max <= %d", cfg.Select)}
	case cfg.SumMin > cfg.SumMax:
		return &FieldError{Field: "analysis.sum-range", Reason: "min must not exceed max"}
	case cfg.OverdueInclusion && (cfg.OverdueMin < 0 || cfg.OverdueMin > cfg.OverdueMax):
		return &FieldError{Field: "analysis.overdue-inclusion", Reason: "bounds must satisfy 0 <= min <= max"}
	case cfg.TestDraws < 1:
		return &FieldError{Field: "validation.test-draws", Reason: "must be at least 1"}
	case cfg.AlertThreshold < 1 || cfg.AlertThreshold > cfg.Select:
		return &FieldError{Field: "validation.alert-threshold", Reason: fmt.Sprintf("must be within [1, %d]", cfg.Select)}
	case cfg.SetsToGenerate < 1:
		return &FieldError{Field: "output.sets", Reason: "must be at least 1"}
	}
	return nil
}

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func applyFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func applyFlag(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applySize(dst map[int]bool, size int, src *bool) {
	if src != nil {
		dst[size] = *src
	}
}
