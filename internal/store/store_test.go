package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/lotto/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "draws.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func testRecords() []model.Draw {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []model.Draw{
		{Date: base, Numbers: []int{5, 12, 23, 34, 45, 55}},
		{Date: base.AddDate(0, 0, 3), Numbers: []int{1, 2, 3, 4, 5, 6}},
		{Date: base.AddDate(0, 0, 6), Numbers: []int{7, 14, 21, 28, 35, 42}},
	}
}

func TestImportAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	inserted, err := s.ImportDraws(ctx, testRecords())
	if err != nil {
		t.Fatalf("ImportDraws: %v", err)
	}
	if inserted != 3 {
		t.Fatalf("inserted = %d, want 3", inserted)
	}

	records, err := s.ListDraws(ctx, 0)
	if err != nil {
		t.Fatalf("ListDraws: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	// Chronological order with positional indexes.
	for i, d := range records {
		if d.Index != i {
			t.Fatalf("record %d has index %d", i, d.Index)
		}
		if i > 0 && d.Date.Before(records[i-1].Date) {
			t.Fatalf("records out of order: %v before %v", d.Date, records[i-1].Date)
		}
	}
	if records[0].Numbers[0] != 5 || records[2].Numbers[5] != 42 {
		t.Fatalf("unexpected numbers: %v", records)
	}
}

func TestImportSkipsDuplicates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.ImportDraws(ctx, testRecords()); err != nil {
		t.Fatalf("first import: %v", err)
	}
	inserted, err := s.ImportDraws(ctx, testRecords())
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if inserted != 0 {
		t.Fatalf("re-import inserted %d, want 0", inserted)
	}

	count, err := s.CountDraws(ctx)
	if err != nil {
		t.Fatalf("CountDraws: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
}

func TestListDrawsLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.ImportDraws(ctx, testRecords()); err != nil {
		t.Fatalf("ImportDraws: %v", err)
	}
	records, err := s.ListDraws(ctx, 2)
	if err != nil {
		t.Fatalf("ListDraws: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// The trailing two draws, still ascending.
	if records[0].Numbers[0] != 1 || records[1].Numbers[0] != 7 {
		t.Fatalf("unexpected window: %v", records)
	}
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "draws.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
