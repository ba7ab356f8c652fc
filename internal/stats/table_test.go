package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Number", "Count"}
	rows := [][]string{
		{"7", "12"},
		{"23", "3"},
	}
	rightAlign := map[int]bool{0: true, 1: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Number Count" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "     7    12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "    23     3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestBarScalesToWidth(t *testing.T) {
	if got := bar(10, 10, 4); got != "####" {
		t.Fatalf("full bar = %q", got)
	}
	if got := bar(5, 10, 4); got != "##" {
		t.Fatalf("half bar = %q", got)
	}
	if got := bar(1, 100, 4); got != "#" {
		t.Fatalf("minimum bar = %q", got)
	}
	if got := bar(0, 10, 4); got != "" {
		t.Fatalf("zero bar = %q", got)
	}
}
