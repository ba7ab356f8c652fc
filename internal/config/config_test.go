package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := Defaults()
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate(Defaults()) = %v", err)
	}
	if cfg.Pool != 55 || cfg.Select != 6 {
		t.Fatalf("pool/select = %d/%d, want 55/6", cfg.Pool, cfg.Select)
	}
	if cfg.RecencyHot != 3 || cfg.RecencyWarm != 10 || cfg.RecencyCold != 30 {
		t.Fatalf("recency bins = %d/%d/%d", cfg.RecencyHot, cfg.RecencyWarm, cfg.RecencyCold)
	}
	if !cfg.CombinationSizes[2] || !cfg.CombinationSizes[3] {
		t.Fatalf("pairs and triplets should be enabled by default")
	}
	if cfg.GapValidation || cfg.OverdueInclusion {
		t.Fatalf("gap validation and overdue inclusion should be off by default")
	}
	if cfg.ResultsDir != DefaultResultsDir() {
		t.Fatalf("results dir = %q, want %q", cfg.ResultsDir, DefaultResultsDir())
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	fc, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	cfg, err := fc.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Pool != Defaults().Pool {
		t.Fatalf("empty config should resolve to defaults")
	}
}

func TestResolveMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[data]
results-dir = "/var/lib/lotto"

[strategy]
number-pool = 49
frequency-weight = 0.5

[analysis.recency-bins]
hot = 2

[analysis.gap-validation]
enabled = true
max-single-gap = 18

[analysis.combinations]
pairs = false

[output]
sets = 7
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	fc, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cfg, err := fc.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if cfg.Pool != 49 {
		t.Errorf("pool = %d, want 49", cfg.Pool)
	}
	if cfg.FrequencyWeight != 0.5 {
		t.Errorf("frequency weight = %v, want 0.5", cfg.FrequencyWeight)
	}
	if cfg.RecencyHot != 2 {
		t.Errorf("hot bin = %d, want 2", cfg.RecencyHot)
	}
	if !cfg.GapValidation || cfg.MaxSingleGap != 18 {
		t.Errorf("gap validation = %v/%d, want true/18", cfg.GapValidation, cfg.MaxSingleGap)
	}
	if cfg.CombinationSizes[2] {
		t.Errorf("pairs should be disabled")
	}
	if cfg.SetsToGenerate != 7 {
		t.Errorf("sets = %d, want 7", cfg.SetsToGenerate)
	}
	if cfg.ResultsDir != "/var/lib/lotto" {
		t.Errorf("results dir = %q, want /var/lib/lotto", cfg.ResultsDir)
	}
	// Untouched fields keep their defaults.
	if cfg.Select != 6 || cfg.RecencyWarm != 10 || cfg.Attempts != 1000 {
		t.Errorf("defaults leaked: select=%d warm=%d attempts=%d", cfg.Select, cfg.RecencyWarm, cfg.Attempts)
	}
}

func TestValidateFieldErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(cfg *FileConfig)
		field  string
	}{
		{
			"select below one",
			func(fc *FileConfig) { fc.Strategy.NumbersToSelect = intp(0) },
			"strategy.numbers-to-select",
		},
		{
			"pool below select",
			func(fc *FileConfig) { fc.Strategy.NumberPool = intp(5) },
			"strategy.number-pool",
		},
		{
			"negative weight",
			func(fc *FileConfig) { fc.Strategy.RandomWeight = floatp(-1) },
			"strategy.*-weight",
		},
		{
			"negative top range",
			func(fc *FileConfig) { fc.Analysis.TopRange = intp(-1) },
			"analysis.top-range",
		},
		{
			"warm below hot",
			func(fc *FileConfig) { fc.Analysis.RecencyBins.Warm = intp(1) },
			"analysis.recency-bins.warm",
		},
		{
			"odd max above select",
			func(fc *FileConfig) { fc.Analysis.OddEven.MaxOdds = intp(9) },
			"analysis.odd-even",
		},
		{
			"sum min above max",
			func(fc *FileConfig) { fc.Analysis.SumRange.Min = intp(300) },
			"analysis.sum-range",
		},
		{
			"alert threshold above select",
			func(fc *FileConfig) { fc.Validation.AlertThreshold = intp(7) },
			"validation.alert-threshold",
		},
		{
			"zero sets",
			func(fc *FileConfig) { fc.Output.SetsToGenerate = intp(0) },
			"output.sets",
		},
	}
	for _, tc := range cases {
		var fc FileConfig
		tc.mutate(&fc)
		_, err := fc.Resolve()
		var fieldErr *FieldError
		if !errors.As(err, &fieldErr) {
			t.Errorf("%s: error = %v, want *FieldError", tc.name, err)
			continue
		}
		if fieldErr.Field != tc.field {
			t.Errorf("%s: field = %q, want %q", tc.name, fieldErr.Field, tc.field)
		}
	}
}

func TestResolveImport(t *testing.T) {
	var fc FileConfig
	imp := fc.ResolveImport()
	if imp.DateLayout != DefaultDateLayout || imp.HasHeader {
		t.Fatalf("defaults = %+v", imp)
	}

	layout := "2006-01-02"
	header := true
	fc.Data.DateLayout = &layout
	fc.Data.HasHeader = &header
	imp = fc.ResolveImport()
	if imp.DateLayout != layout || !imp.HasHeader {
		t.Fatalf("overrides = %+v", imp)
	}
}

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }
