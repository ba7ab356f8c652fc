// Package main provides the CLI entrypoint for lotto.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/lotto/internal/config"
	"github.com/verte-zerg/lotto/internal/draws"
	"github.com/verte-zerg/lotto/internal/generator"
	"github.com/verte-zerg/lotto/internal/model"
	"github.com/verte-zerg/lotto/internal/stats"
	"github.com/verte-zerg/lotto/internal/statsui"
	"github.com/verte-zerg/lotto/internal/store"
	"github.com/verte-zerg/lotto/internal/validate"
	"github.com/verte-zerg/lotto/internal/weights"
)

var (
	analyzeDraws       int
	analyzeInteractive bool
	analyzeSave        bool

	generateSets     int
	generateStrategy string
	generateSave     bool

	validateDraws     int
	validateThreshold int
	validateSets      int
	validateStrategy  string
	validateNumbers   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lotto",
		Short:         "Lottery draw analyzer and set generator",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <history.csv>",
		Short: "Import historical draws into the local database",
		Args:  cobra.ExactArgs(1),
		RunE:  runImportCmd,
	}
}

func runImportCmd(_ *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg, err := fileCfg.Resolve()
	if err != nil {
		return err
	}

	records, err := draws.LoadCSV(args[0], fileCfg.ResolveImport())
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	drawStore, err := draws.NewStore(records, cfg)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(st)

	inserted, err := st.ImportDraws(context.Background(), drawStore.Window(0))
	if err != nil {
		return fmt.Errorf("failed to import draws: %w", err)
	}
	total, err := st.CountDraws(context.Background())
	if err != nil {
		return fmt.Errorf("failed to count draws: %w", err)
	}
	logErrf("Imported %d new draws (%d total)\n", inserted, total)
	return nil
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze historical draw patterns",
		Args:  cobra.NoArgs,
		RunE:  runAnalyzeCmd,
	}
	cmd.Flags().IntVar(&analyzeDraws, "draws", 0, "number of trailing draws to analyze (0 = all)")
	cmd.Flags().BoolVar(&analyzeInteractive, "interactive", false, "browse statistics in a TUI")
	cmd.Flags().BoolVar(&analyzeSave, "save", false, "save the full report as JSON")
	return cmd
}

func runAnalyzeCmd(_ *cobra.Command, _ []string) error {
	cfg, window, err := loadWindow(analyzeDraws)
	if err != nil {
		return err
	}
	report := stats.Compute(window, cfg)

	if analyzeSave {
		path, err := saveReport(report, cfg.ResultsDir)
		if err != nil {
			return err
		}
		logErrf("Saved report to %s\n", path)
	}

	if analyzeInteractive {
		program := tea.NewProgram(statsui.NewModel(report, cfg), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run stats TUI: %w", err)
		}
		return nil
	}
	return stats.RenderReport(os.Stdout, report, cfg, stats.TerminalWidth())
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate optimized number sets",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}
	cmd.Flags().IntVar(&generateSets, "sets", 0, "number of sets to generate (default from config)")
	cmd.Flags().StringVar(&generateStrategy, "strategy", "auto", "generation strategy (auto, weighted, highlow, prime, gap)")
	cmd.Flags().BoolVar(&generateSave, "save", false, "append sets to generated_sets.csv")
	return cmd
}

func runGenerateCmd(_ *cobra.Command, _ []string) error {
	strategy, err := generator.ParseStrategy(generateStrategy)
	if err != nil {
		return err
	}
	cfg, window, err := loadWindow(0)
	if err != nil {
		return err
	}
	report := stats.Compute(window, cfg)
	vec := weights.New().Compute(report, cfg)

	count := cfg.SetsToGenerate
	if generateSets > 0 {
		count = generateSets
	}
	sets, err := generator.New().GenerateBatch(count, strategy, vec, report, cfg)
	if err != nil {
		return err
	}

	for i, numbers := range sets {
		if _, err := fmt.Fprintf(os.Stdout, "Set %d: %s\n", i+1, formatNumbers(numbers)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if generateSave {
		path, err := saveSets(sets, cfg.ResultsDir)
		if err != nil {
			return err
		}
		logErrf("Saved sets to %s\n", path)
	}
	return nil
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Back-test generated or supplied sets",
		Args:  cobra.NoArgs,
		RunE:  runValidateCmd,
	}
	cmd.Flags().IntVar(&validateDraws, "test-draws", 0, "draws to test against (default from config)")
	cmd.Flags().IntVar(&validateThreshold, "threshold", 0, "match threshold (default from config)")
	cmd.Flags().IntVar(&validateSets, "sets", 0, "number of sets to generate and test")
	cmd.Flags().StringVar(&validateStrategy, "strategy", "auto", "generation strategy for tested sets")
	cmd.Flags().StringVar(&validateNumbers, "numbers", "", "validate one set (e.g. 3-11-24-32-40-51) instead of back-testing")
	return cmd
}

func runValidateCmd(_ *cobra.Command, _ []string) error {
	cfg, window, err := loadWindow(0)
	if err != nil {
		return err
	}
	if validateDraws > 0 {
		cfg.TestDraws = validateDraws
	}
	if validateThreshold > 0 {
		cfg.AlertThreshold = validateThreshold
	}
	report := stats.Compute(window, cfg)

	if validateNumbers != "" {
		numbers, err := parseNumbers(validateNumbers)
		if err != nil {
			return err
		}
		return printDrawReport(validate.Draw(numbers, report, cfg))
	}

	strategy, err := generator.ParseStrategy(validateStrategy)
	if err != nil {
		return err
	}
	count := cfg.SetsToGenerate
	if validateSets > 0 {
		count = validateSets
	}
	vec := weights.New().Compute(report, cfg)
	sets, err := generator.New().GenerateBatch(count, strategy, vec, report, cfg)
	if err != nil {
		return err
	}

	testWindow := window
	if cfg.TestDraws < len(testWindow) {
		testWindow = testWindow[len(testWindow)-cfg.TestDraws:]
	}
	results := validate.Sets(sets, testWindow, cfg)

	if _, err := fmt.Fprintf(os.Stdout, "Validation over last %d draws (threshold %d+):\n",
		len(testWindow), cfg.AlertThreshold); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	for i, res := range results {
		if _, err := fmt.Fprintf(os.Stdout, "\nSet %d: %s\nSuccess rate: %.1f%%\n",
			i+1, formatNumbers(res.Numbers), res.SuccessRate*100); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		for matches := 0; matches <= cfg.Select; matches++ {
			if _, err := fmt.Fprintf(os.Stdout, "  %d matches: %d times\n",
				matches, res.Distribution[matches]); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	return nil
}

func printDrawReport(res validate.DrawReport) error {
	checks := []struct {
		name  string
		check validate.Check
	}{
		{"structure", res.Structure},
		{"odd/even", res.OddEven},
		{"sum", res.Sum},
		{"gaps", res.Gaps},
		{"overdue", res.Overdue},
	}
	for _, c := range checks {
		status := "ok"
		switch {
		case !c.check.Checked:
			status = "skipped"
		case !c.check.Passed:
			status = "FAIL: " + c.check.Detail
		}
		if _, err := fmt.Fprintf(os.Stdout, "%-10s %s\n", c.name, status); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	verdict := "valid"
	if !res.Valid {
		verdict = "invalid"
	}
	if _, err := fmt.Fprintf(os.Stdout, "Set %s is %s\n", formatNumbers(res.Numbers), verdict); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <numbers>",
		Short: "Classify a draw's numbers against history (e.g. check 3-11-24-32-40-51)",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheckCmd,
	}
}

func runCheckCmd(_ *cobra.Command, args []string) error {
	numbers, err := parseNumbers(args[0])
	if err != nil {
		return err
	}
	cfg, window, err := loadWindow(0)
	if err != nil {
		return err
	}
	if err := draws.CheckNumbers(numbers, cfg.Select, cfg.Pool); err != nil {
		return fmt.Errorf("invalid draw: %w", err)
	}
	report := stats.Compute(window, cfg)
	latest := validate.Latest(numbers, report, cfg)

	for _, n := range latest.Numbers {
		status := latest.Analysis[n]
		if _, err := fmt.Fprintf(os.Stdout, "#%d: %s (appeared %d times)\n",
			n, strings.ToUpper(status.Band), status.Frequency); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// loadWindow resolves config and loads the trailing window from the database.
func loadWindow(last int) (model.Config, []model.Draw, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg, err := fileCfg.Resolve()
	if err != nil {
		return model.Config{}, nil, err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return model.Config{}, nil, fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(st)

	records, err := st.ListDraws(context.Background(), last)
	if err != nil {
		return model.Config{}, nil, fmt.Errorf("failed to list draws: %w", err)
	}
	if len(records) == 0 {
		return model.Config{}, nil, fmt.Errorf("no draws in database; run: lotto import <history.csv>")
	}
	drawStore, err := draws.NewStore(records, cfg)
	if err != nil {
		return model.Config{}, nil, err
	}
	return cfg, drawStore.Window(0), nil
}

func saveReport(report stats.Report, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create results directory: %w", err)
	}
	path := filepath.Join(dir, "analysis_report.json")
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

func saveSets(sets [][]int, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create results directory: %w", err)
	}
	path := filepath.Join(dir, "generated_sets.csv")
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to open sets file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logErrf("failed to close sets file: %v\n", cerr)
		}
	}()
	for _, numbers := range sets {
		if _, err := fmt.Fprintln(file, formatNumbers(numbers)); err != nil {
			return "", fmt.Errorf("failed to write sets: %w", err)
		}
	}
	return path, nil
}

func parseNumbers(text string) ([]int, error) {
	parts := strings.Split(strings.TrimSpace(text), "-")
	numbers := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid number %q (expected e.g. 3-11-24-32-40-51)", part)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func formatNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "-")
}

func defaultConfigTemplate() string {
	return `# lotto configuration
# Uncomment a value to enable it. CLI flags override config values.

[data]
# date-layout = "01/02/06"  # Go time layout for CSV dates
# has-header = false        # Skip the first CSV line
# results-dir = ""          # Directory for saved reports and sets

[strategy]
# number-pool = 55
# numbers-to-select = 6
# frequency-weight = 0.4
# recent-weight = 0.2
# random-weight = 0.4
# low-number-max = 10
# high-prime-min = 35
# attempts = 1000

[analysis]
# top-range = 10
# highlight-min = 5

[analysis.recency-bins]
# hot = 3
# warm = 10
# cold = 30

[analysis.combinations]
# pairs = true
# triplets = true
# quadruplets = false
# quintuplets = false
# sixtuplets = false
# min-count = 2

[analysis.gap-analysis]
# enabled = true
# threshold = 5.0

[analysis.odd-even]
# min-odds = 2
# max-odds = 4

[analysis.sum-range]
# min = 100
# max = 200

[analysis.gap-validation]
# enabled = false
# max-avg-gap = 12.0
# max-single-gap = 25
# min-distinct-gaps = 3

[analysis.overdue-inclusion]
# enabled = false
# min = 0
# max = 2

[validation]
# test-draws = 120
# alert-threshold = 4

[output]
# sets = 4
`
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
