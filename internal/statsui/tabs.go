package statsui

import (
	"fmt"
	"io"

	"github.com/verte-zerg/lotto/internal/model"
	"github.com/verte-zerg/lotto/internal/stats"
)

type sectionRenderer func(w io.Writer, report stats.Report, cfg model.Config, width int) error

func renderSection(w io.Writer, report stats.Report, cfg model.Config, width int, render sectionRenderer) error {
	if report.Meta.DrawsAnalyzed == 0 {
		_, err := fmt.Fprintln(w, "No draws in window.")
		return err
	}
	return render(w, report, cfg, width)
}

func renderFrequencyTab(w io.Writer, report stats.Report, _ model.Config, width int) error {
	return stats.RenderFrequency(w, report.Frequency, width)
}

func renderTemperatureTab(w io.Writer, report stats.Report, _ model.Config, _ int) error {
	return stats.RenderTemperature(w, report.Temperature)
}

func renderShapeTab(w io.Writer, report stats.Report, _ model.Config, _ int) error {
	return stats.RenderShape(w, report)
}

func renderGapsTab(w io.Writer, report stats.Report, cfg model.Config, _ int) error {
	if report.Gaps == nil {
		_, err := fmt.Fprintln(w, "Gap analysis is disabled in config.")
		return err
	}
	return stats.RenderGaps(w, *report.Gaps)
}

func renderCombinationsTab(w io.Writer, report stats.Report, cfg model.Config, _ int) error {
	if report.Combinations == nil {
		_, err := fmt.Fprintln(w, "Combination analysis is disabled in config.")
		return err
	}
	return stats.RenderCombinations(w, *report.Combinations, cfg.MinCombinationCount)
}
