package generator

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/verte-zerg/lotto/internal/config"
	"github.com/verte-zerg/lotto/internal/model"
	"github.com/verte-zerg/lotto/internal/stats"
	"github.com/verte-zerg/lotto/internal/validate"
	"github.com/verte-zerg/lotto/internal/weights"
)

func makeWindow(sets ...[]int) []model.Draw {
	window := make([]model.Draw, len(sets))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, numbers := range sets {
		window[i] = model.Draw{Index: i, Date: base.AddDate(0, 0, i*3), Numbers: numbers}
	}
	return window
}

func testFixture(t *testing.T) (model.Config, stats.Report, weights.Vector) {
	t.Helper()
	cfg := config.Defaults()
	window := makeWindow(
		[]int{3, 11, 24, 32, 40, 51},
		[]int{7, 14, 22, 35, 41, 55},
		[]int{2, 9, 18, 27, 36, 45},
		[]int{5, 16, 25, 33, 44, 52},
	)
	report := stats.Compute(window, cfg)
	vec := weights.NewWithRand(rand.New(rand.NewSource(11))).Compute(report, cfg)
	return cfg, report, vec
}

func TestGenerateSatisfiesAllConstraints(t *testing.T) {
	cfg, report, vec := testFixture(t)
	gen := NewWithRand(rand.New(rand.NewSource(23)))

	for _, strategy := range []Strategy{StrategyAuto, StrategyWeighted, StrategyHighLow, StrategyPrime} {
		for i := 0; i < 20; i++ {
			numbers, err := gen.Generate(strategy, vec, report, cfg)
			if err != nil {
				t.Fatalf("%s: generate failed: %v", strategy, err)
			}
			if check := validate.Draw(numbers, report, cfg); !check.Valid {
				t.Fatalf("%s: generated invalid set %v (failing: %v)", strategy, numbers, check.Failed())
			}
		}
	}
}

func TestGenerateExhaustsOnImpossibleConstraints(t *testing.T) {
	cfg, report, vec := testFixture(t)
	// Six distinct numbers from [1, 55] sum to at least 21.
	cfg.SumMin = 1
	cfg.SumMax = 10
	cfg.Attempts = 50

	gen := NewWithRand(rand.New(rand.NewSource(5)))
	_, err := gen.Generate(StrategyWeighted, vec, report, cfg)
	if err == nil {
		t.Fatalf("expected exhaustion error")
	}
	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected ExhaustedError, got %T: %v", err, err)
	}
	if exhausted.Attempts != 50 {
		t.Fatalf("attempts = %d, want 50", exhausted.Attempts)
	}
	found := false
	for _, name := range exhausted.Failed {
		if name == "sum" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected sum among failing constraints, got %v", exhausted.Failed)
	}
}

func TestHighLowMixSplitsThePool(t *testing.T) {
	cfg, _, _ := testFixture(t)
	gen := NewWithRand(rand.New(rand.NewSource(3)))

	for i := 0; i < 50; i++ {
		numbers := gen.highLowMix(cfg)
		low := 0
		for _, n := range numbers {
			if n <= cfg.LowNumberMax {
				low++
			}
		}
		if low != cfg.Select/2 {
			t.Fatalf("low count = %d, want %d (set %v)", low, cfg.Select/2, numbers)
		}
	}
}

func TestPrimeBalancedDegradesOnScarcePrimes(t *testing.T) {
	cfg, report, _ := testFixture(t)
	// No primes reach the floor; the strategy must still fill the set.
	cfg.HighPrimeMin = cfg.Pool + 1

	gen := NewWithRand(rand.New(rand.NewSource(9)))
	numbers := gen.primeBalanced(report, cfg)
	if len(numbers) != cfg.Select {
		t.Fatalf("set size = %d, want %d", len(numbers), cfg.Select)
	}
	seen := map[int]bool{}
	for _, n := range numbers {
		if n < 1 || n > cfg.Pool {
			t.Fatalf("number %d outside pool", n)
		}
		if seen[n] {
			t.Fatalf("duplicate number %d in %v", n, numbers)
		}
		seen[n] = true
	}
}

func TestGapStrategyIsDeterministic(t *testing.T) {
	cfg, report, _ := testFixture(t)

	first := gapBalanced(report, cfg)
	second := gapBalanced(report, cfg)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("gap strategy not deterministic: %v vs %v", first, second)
	}
	if len(first) != cfg.Select {
		t.Fatalf("set size = %d, want %d", len(first), cfg.Select)
	}
	seen := map[int]bool{}
	for _, n := range first {
		if n < 1 || n > cfg.Pool || seen[n] {
			t.Fatalf("malformed gap set %v", first)
		}
		seen[n] = true
	}
	// Seeded from the two lowest overdue numbers.
	if len(report.Gaps.Overdue) >= 2 {
		if !reflect.DeepEqual(
			[]int{report.Gaps.Overdue[0], report.Gaps.Overdue[1]},
			intersect(first, report.Gaps.Overdue[:2]),
		) {
			t.Fatalf("gap set %v does not contain overdue seed %v", first, report.Gaps.Overdue[:2])
		}
	}
}

func intersect(numbers, want []int) []int {
	var out []int
	for _, w := range want {
		for _, n := range numbers {
			if n == w {
				out = append(out, w)
				break
			}
		}
	}
	return out
}

func TestWeightedRandomStopsWhenWeightMassRunsOut(t *testing.T) {
	cfg := config.Defaults()
	vec := make(weights.Vector, cfg.Pool)
	vec[4] = 0.5
	vec[20] = 0.3
	vec[39] = 0.2

	gen := NewWithRand(rand.New(rand.NewSource(13)))
	numbers := gen.weightedRandom(vec, cfg)
	if len(numbers) != 3 {
		t.Fatalf("got %d numbers, want 3 (the positive-weight entries)", len(numbers))
	}
	for _, n := range numbers {
		if n != 5 && n != 21 && n != 40 {
			t.Fatalf("number %d has zero weight (set %v)", n, numbers)
		}
	}
}

func TestGenerateBatchProducesIndependentSets(t *testing.T) {
	cfg, report, vec := testFixture(t)
	gen := NewWithRand(rand.New(rand.NewSource(17)))

	sets, err := gen.GenerateBatch(5, StrategyAuto, vec, report, cfg)
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if len(sets) != 5 {
		t.Fatalf("got %d sets, want 5", len(sets))
	}
	for _, numbers := range sets {
		if check := validate.Draw(numbers, report, cfg); !check.Valid {
			t.Fatalf("invalid set in batch: %v", numbers)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	cases := map[string]Strategy{
		"auto":     StrategyAuto,
		"weighted": StrategyWeighted,
		"highlow":  StrategyHighLow,
		"prime":    StrategyPrime,
		"gap":      StrategyGap,
	}
	for name, want := range cases {
		got, err := ParseStrategy(name)
		if err != nil {
			t.Fatalf("ParseStrategy(%q) failed: %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseStrategy(%q) = %v, want %v", name, got, want)
		}
	}
	if _, err := ParseStrategy("bogus"); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
}
