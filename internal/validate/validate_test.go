package validate

import (
	"testing"
	"time"

	"github.com/verte-zerg/lotto/internal/config"
	"github.com/verte-zerg/lotto/internal/model"
	"github.com/verte-zerg/lotto/internal/stats"
)

func makeWindow(sets ...[]int) []model.Draw {
	window := make([]model.Draw, len(sets))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, numbers := range sets {
		window[i] = model.Draw{Index: i, Date: base.AddDate(0, 0, i*3), Numbers: numbers}
	}
	return window
}

func TestDrawRejectsOddCountOutsideBounds(t *testing.T) {
	cfg := config.Defaults()
	cfg.OddMin = 2
	cfg.OddMax = 4
	cfg.SumMin = 1
	cfg.SumMax = 400
	report := stats.Compute(makeWindow([]int{1, 2, 3, 4, 5, 6}), cfg)

	// Five odd numbers.
	res := Draw([]int{1, 2, 3, 4, 5, 7}, report, cfg)
	if res.Valid {
		t.Fatalf("expected invalid result")
	}
	if res.OddEven.Passed {
		t.Fatalf("odd/even check should fail")
	}
	if !res.Structure.Passed || !res.Sum.Passed {
		t.Fatalf("unexpected failures: %+v", res)
	}
	failed := res.Failed()
	if len(failed) != 1 || failed[0] != "odd/even" {
		t.Fatalf("failed = %v, want [odd/even]", failed)
	}
}

func TestDrawStructuralChecks(t *testing.T) {
	cfg := config.Defaults()
	report := stats.Compute(makeWindow([]int{1, 2, 3, 4, 5, 6}), cfg)

	cases := []struct {
		name    string
		numbers []int
	}{
		{"too few", []int{1, 2, 3}},
		{"duplicate", []int{1, 1, 2, 3, 4, 5}},
		{"out of range", []int{1, 2, 3, 4, 5, 99}},
	}
	for _, tc := range cases {
		res := Draw(tc.numbers, report, cfg)
		if res.Structure.Passed {
			t.Fatalf("%s: structure check should fail for %v", tc.name, tc.numbers)
		}
		if res.Valid {
			t.Fatalf("%s: aggregate should be invalid", tc.name)
		}
	}
}

func TestDrawSkipsDisabledCategories(t *testing.T) {
	cfg := config.Defaults()
	cfg.GapValidation = false
	cfg.OverdueInclusion = false
	report := stats.Compute(makeWindow([]int{10, 20, 25, 31, 42, 44}), cfg)

	res := Draw([]int{10, 20, 25, 31, 42, 44}, report, cfg)
	if res.Gaps.Checked || res.Overdue.Checked {
		t.Fatalf("disabled categories should be skipped: %+v", res)
	}
	if !res.Valid {
		t.Fatalf("expected valid result, got %+v", res)
	}
}

func TestDrawGapConstraints(t *testing.T) {
	cfg := config.Defaults()
	cfg.SumMin = 1
	cfg.SumMax = 400
	cfg.OddMin = 0
	cfg.OddMax = 6
	cfg.GapValidation = true
	cfg.MaxAvgGap = 12
	cfg.MaxSingleGap = 20
	cfg.MinDistinctGaps = 3
	report := stats.Compute(makeWindow([]int{1, 2, 3, 4, 5, 6}), cfg)

	// Gap of 30 between 20 and 50 exceeds the single-gap ceiling.
	res := Draw([]int{18, 19, 20, 50, 51, 52}, report, cfg)
	if res.Gaps.Passed {
		t.Fatalf("single-gap ceiling should fail: %+v", res.Gaps)
	}

	// Gaps {1,1,1,1,1}: only one distinct value.
	res = Draw([]int{10, 11, 12, 13, 14, 15}, report, cfg)
	if res.Gaps.Passed {
		t.Fatalf("distinct-gap floor should fail: %+v", res.Gaps)
	}

	// Gaps {5,3,9,6,8}: avg 6.2, max 9, five distinct values.
	res = Draw([]int{5, 10, 13, 22, 28, 36}, report, cfg)
	if !res.Gaps.Passed {
		t.Fatalf("gap check should pass: %+v", res.Gaps)
	}
}

func TestSetsMatchDistribution(t *testing.T) {
	cfg := config.Defaults()
	cfg.AlertThreshold = 4
	window := makeWindow(
		[]int{1, 2, 3, 4, 5, 6},
		[]int{7, 8, 9, 10, 11, 12},
	)

	reports := Sets([][]int{{1, 2, 3, 4, 5, 6}}, window, cfg)
	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}
	res := reports[0]

	if len(res.Distribution) != cfg.Select+1 {
		t.Fatalf("distribution has %d keys, want %d", len(res.Distribution), cfg.Select+1)
	}
	total := 0
	for matches := 0; matches <= cfg.Select; matches++ {
		count, ok := res.Distribution[matches]
		if !ok {
			t.Fatalf("missing distribution key %d", matches)
		}
		total += count
	}
	if total != len(window) {
		t.Fatalf("distribution counts sum to %d, want %d", total, len(window))
	}
	if res.Distribution[6] != 1 || res.Distribution[0] != 1 {
		t.Fatalf("unexpected distribution: %v", res.Distribution)
	}
	if res.SuccessRate != 0.5 {
		t.Fatalf("success rate = %v, want 0.5", res.SuccessRate)
	}
}

func TestSetsEmptyWindow(t *testing.T) {
	cfg := config.Defaults()
	reports := Sets([][]int{{1, 2, 3, 4, 5, 6}}, nil, cfg)
	if reports[0].SuccessRate != 0 {
		t.Fatalf("success rate = %v, want 0", reports[0].SuccessRate)
	}
	for matches, count := range reports[0].Distribution {
		if count != 0 {
			t.Fatalf("distribution[%d] = %d, want 0", matches, count)
		}
	}
}

func TestLatestClassifiesNumbers(t *testing.T) {
	cfg := config.Defaults()
	window := makeWindow(
		[]int{40, 41, 42, 43, 44, 45},
		[]int{1, 2, 3, 4, 5, 6},
	)
	report := stats.Compute(window, cfg)

	latest := Latest([]int{6, 55, 1, 40}, report, cfg)
	want := []int{1, 6, 40, 55}
	for i, n := range latest.Numbers {
		if n != want[i] {
			t.Fatalf("numbers = %v, want %v", latest.Numbers, want)
		}
	}
	if latest.Analysis[1].Band != "hot" {
		t.Fatalf("number 1 band = %q, want hot", latest.Analysis[1].Band)
	}
	if latest.Analysis[40].Band != "hot" {
		t.Fatalf("number 40 band = %q, want hot (recency 1)", latest.Analysis[40].Band)
	}
	if latest.Analysis[55].Band != "cold" {
		t.Fatalf("number 55 band = %q, want cold", latest.Analysis[55].Band)
	}
	if latest.Analysis[1].Frequency != 1 || latest.Analysis[55].Frequency != 0 {
		t.Fatalf("unexpected frequencies: %+v", latest.Analysis)
	}
}
