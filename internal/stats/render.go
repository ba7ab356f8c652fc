package stats

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/lotto/internal/model"
)

const (
	terminalWidthBackup = 80
	barMaxWidth         = 40
	barChar             = "#"
)

// TerminalWidth returns the stdout width, falling back to a default when
// stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// RenderReport prints every section of the report as text tables.
func RenderReport(w io.Writer, report Report, cfg model.Config, totalWidth int) error {
	if report.Meta.DrawsAnalyzed == 0 {
		_, err := fmt.Fprintln(w, "No draws in window.")
		return err
	}
	if _, err := fmt.Fprintf(w, "Analyzed %d draws (%s to %s)\n\n",
		report.Meta.DrawsAnalyzed,
		report.Meta.From.Format("2006-01-02"),
		report.Meta.To.Format("2006-01-02")); err != nil {
		return err
	}

	if err := RenderFrequency(w, report.Frequency, totalWidth); err != nil {
		return err
	}
	if err := RenderTemperature(w, report.Temperature); err != nil {
		return err
	}
	if err := RenderShape(w, report); err != nil {
		return err
	}
	if report.Gaps != nil {
		if err := RenderGaps(w, *report.Gaps); err != nil {
			return err
		}
	}
	if report.Combinations != nil {
		if err := RenderCombinations(w, *report.Combinations, cfg.MinCombinationCount); err != nil {
			return err
		}
	}
	return nil
}

func RenderFrequency(w io.Writer, freq FrequencyStats, totalWidth int) error {
	if _, err := fmt.Fprintln(w, "Frequency (top)"); err != nil {
		return err
	}
	maxCount := 0
	for _, nc := range freq.Top {
		if nc.Count > maxCount {
			maxCount = nc.Count
		}
	}
	barWidth := barMaxWidth
	if totalWidth > 0 && totalWidth-20 < barWidth {
		barWidth = totalWidth - 20
	}
	if barWidth < 1 {
		barWidth = 1
	}
	rows := make([][]string, 0, len(freq.Top))
	for _, nc := range freq.Top {
		rows = append(rows, []string{
			strconv.Itoa(nc.Number),
			strconv.Itoa(nc.Count),
			bar(nc.Count, maxCount, barWidth),
		})
	}
	lines := formatTable([]string{"Number", "Count", ""}, rows, map[int]bool{0: true, 1: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if len(freq.Highlighted) > 0 {
		if _, err := fmt.Fprintf(w, "Highlighted: %s\n", joinInts(freq.Highlighted)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func RenderTemperature(w io.Writer, temp TemperatureStats) error {
	if _, err := fmt.Fprintln(w, "Temperature"); err != nil {
		return err
	}
	rows := [][]string{
		{"Hot", joinInts(temp.Hot)},
		{"Warm", joinInts(temp.Warm)},
		{"Cold", joinInts(temp.Cold)},
		{"Dormant", joinInts(temp.Dormant)},
	}
	for _, line := range formatTable([]string{"Band", "Numbers"}, rows, nil) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func RenderShape(w io.Writer, report Report) error {
	if _, err := fmt.Fprintln(w, "Draw Shape"); err != nil {
		return err
	}
	rows := [][]string{}
	for _, odds := range sortedKeys(report.OddEven.Counts) {
		rows = append(rows, []string{
			fmt.Sprintf("%d odd / %d even", odds, drawSize(report)-odds),
			strconv.Itoa(report.OddEven.Counts[odds]),
		})
	}
	for _, line := range formatTable([]string{"Split", "Draws"}, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Sums: min %d, max %d, mean %.1f, std %.1f\n",
		report.Sums.Min, report.Sums.Max, report.Sums.Mean, report.Sums.StdDev); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Low numbers (<= %d): %.2f per draw\n",
		report.HighLow.LowMax, report.HighLow.AvgLowPerDraw); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Primes in pool: %d (%.0f%%)\n",
		len(report.Primes.Primes), report.Primes.PoolFraction*100); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func RenderGaps(w io.Writer, gaps GapStats) error {
	if _, err := fmt.Fprintln(w, "Adjacent Gaps"); err != nil {
		return err
	}
	rows := [][]string{}
	for _, gap := range sortedKeys(gaps.Counts) {
		rows = append(rows, []string{strconv.Itoa(gap), strconv.Itoa(gaps.Counts[gap])})
	}
	for _, line := range formatTable([]string{"Gap", "Count"}, rows, map[int]bool{0: true, 1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if len(gaps.Overdue) > 0 {
		if _, err := fmt.Fprintf(w, "Overdue (avg gap > %.1f): %s\n", gaps.Threshold, joinInts(gaps.Overdue)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func RenderCombinations(w io.Writer, combos CombinationStats, minCount int) error {
	if _, err := fmt.Fprintln(w, "Combinations"); err != nil {
		return err
	}
	for _, size := range sortedKeys(combos.Sizes) {
		counts := combos.Sizes[size]
		type entry struct {
			key   string
			count int
		}
		entries := make([]entry, 0, len(counts))
		for key, count := range counts {
			if count >= minCount {
				entries = append(entries, entry{key: key, count: count})
			}
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].count == entries[j].count {
				return entries[i].key < entries[j].key
			}
			return entries[i].count > entries[j].count
		})
		if _, err := fmt.Fprintf(w, "Size %d (count >= %d): %d repeated\n", size, minCount, len(entries)); err != nil {
			return err
		}
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{e.key, strconv.Itoa(e.count)})
		}
		for _, line := range formatTable([]string{"Combination", "Count"}, rows, map[int]bool{1: true}) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func bar(count, maxCount, width int) string {
	if maxCount <= 0 || count <= 0 {
		return ""
	}
	n := count * width / maxCount
	if n < 1 {
		n = 1
	}
	return strings.Repeat(barChar, n)
}

func drawSize(report Report) int {
	total := 0
	for _, count := range report.Frequency.All {
		total += count
	}
	if report.Meta.DrawsAnalyzed == 0 {
		return 0
	}
	return total / report.Meta.DrawsAnalyzed
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
