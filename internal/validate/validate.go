// Package validate checks candidate sets against hard constraints and
// back-tests them over historical windows.
package validate

import (
	"fmt"

	"github.com/verte-zerg/lotto/internal/draws"
	"github.com/verte-zerg/lotto/internal/model"
	"github.com/verte-zerg/lotto/internal/stats"
)

// Check is the outcome of one constraint category. Skipped categories count
// as passing toward the aggregate.
type Check struct {
	Checked bool   `json:"checked"`
	Passed  bool   `json:"passed"`
	Detail  string `json:"detail,omitempty"`
}

// DrawReport breaks a candidate's validity down per constraint category.
type DrawReport struct {
	Numbers   []int `json:"numbers"`
	Structure Check `json:"structure"`
	OddEven   Check `json:"odd_even"`
	Sum       Check `json:"sum"`
	Gaps      Check `json:"gaps"`
	Overdue   Check `json:"overdue"`
	Valid     bool  `json:"valid"`
}

// Failed lists the names of the categories that did not pass.
func (r DrawReport) Failed() []string {
	var failed []string
	for _, c := range []struct {
		name  string
		check Check
	}{
		{"structure", r.Structure},
		{"odd/even", r.OddEven},
		{"sum", r.Sum},
		{"gaps", r.Gaps},
		{"overdue", r.Overdue},
	} {
		if c.check.Checked && !c.check.Passed {
			failed = append(failed, c.name)
		}
	}
	return failed
}

// Draw validates a candidate set against every configured hard constraint.
func Draw(numbers []int, report stats.Report, cfg model.Config) DrawReport {
	out := DrawReport{Numbers: numbers}

	out.Structure = Check{Checked: true, Passed: true}
	if err := draws.CheckNumbers(numbers, cfg.Select, cfg.Pool); err != nil {
		out.Structure.Passed = false
		out.Structure.Detail = err.Error()
	}

	odds := 0
	total := 0
	for _, n := range numbers {
		if n%2 == 1 {
			odds++
		}
		total += n
	}
	out.OddEven = Check{Checked: true, Passed: odds >= cfg.OddMin && odds <= cfg.OddMax}
	if !out.OddEven.Passed {
		out.OddEven.Detail = fmt.Sprintf("%d odd numbers, want %d-%d", odds, cfg.OddMin, cfg.OddMax)
	}
	out.Sum = Check{Checked: true, Passed: total >= cfg.SumMin && total <= cfg.SumMax}
	if !out.Sum.Passed {
		out.Sum.Detail = fmt.Sprintf("sum %d, want %d-%d", total, cfg.SumMin, cfg.SumMax)
	}

	out.Gaps = checkGaps(numbers, cfg)
	out.Overdue = checkOverdue(numbers, report, cfg)

	out.Valid = out.Structure.Passed && out.OddEven.Passed && out.Sum.Passed &&
		out.Gaps.Passed && out.Overdue.Passed
	return out
}

func checkGaps(numbers []int, cfg model.Config) Check {
	if !cfg.GapValidation {
		return Check{Passed: true}
	}
	check := Check{Checked: true, Passed: true}
	gaps := stats.AdjacentGaps(numbers)
	if len(gaps) == 0 {
		return check
	}
	total := 0
	maxGap := gaps[0]
	distinct := map[int]bool{}
	for _, g := range gaps {
		total += g
		if g > maxGap {
			maxGap = g
		}
		distinct[g] = true
	}
	avg := float64(total) / float64(len(gaps))
	switch {
	case avg > cfg.MaxAvgGap:
		check.Passed = false
		check.Detail = fmt.Sprintf("average gap %.1f exceeds %.1f", avg, cfg.MaxAvgGap)
	case maxGap > cfg.MaxSingleGap:
		check.Passed = false
		check.Detail = fmt.Sprintf("gap %d exceeds %d", maxGap, cfg.MaxSingleGap)
	case len(distinct) < cfg.MinDistinctGaps:
		check.Passed = false
		check.Detail = fmt.Sprintf("%d distinct gap values, want at least %d", len(distinct), cfg.MinDistinctGaps)
	}
	return check
}

func checkOverdue(numbers []int, report stats.Report, cfg model.Config) Check {
	if !cfg.OverdueInclusion || report.Gaps == nil {
		return Check{Passed: true}
	}
	overdue := map[int]bool{}
	for _, n := range report.Gaps.Overdue {
		overdue[n] = true
	}
	count := 0
	for _, n := range numbers {
		if overdue[n] {
			count++
		}
	}
	check := Check{Checked: true, Passed: count >= cfg.OverdueMin && count <= cfg.OverdueMax}
	if !check.Passed {
		check.Detail = fmt.Sprintf("%d overdue numbers, want %d-%d", count, cfg.OverdueMin, cfg.OverdueMax)
	}
	return check
}
