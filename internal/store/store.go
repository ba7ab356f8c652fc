// Package store handles SQLite persistence of draw history.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"database/sql"

	"github.com/verte-zerg/lotto/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for historical draws.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS draws (
			id INTEGER PRIMARY KEY,
			drawn_at TEXT NOT NULL,
			numbers TEXT NOT NULL,
			UNIQUE (drawn_at, numbers)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_draws_drawn_at ON draws(drawn_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ImportDraws stores draw records, skipping ones already present. It returns
// the number of newly inserted draws.
func (s *Store) ImportDraws(ctx context.Context, records []model.Draw) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO draws (drawn_at, numbers) VALUES (?, ?)`)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	inserted := 0
	for _, d := range records {
		res, err := stmt.ExecContext(ctx, d.Date.Format(time.DateOnly), encodeNumbers(d.Numbers))
		if err != nil {
			return 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += int(n)
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

// ListDraws returns the trailing last draws in chronological order, or all
// draws when last is non-positive.
func (s *Store) ListDraws(ctx context.Context, last int) ([]model.Draw, error) {
	query := `SELECT drawn_at, numbers FROM (
		SELECT id, drawn_at, numbers FROM draws
		ORDER BY drawn_at DESC, id DESC
		LIMIT ?
	) ORDER BY drawn_at ASC, id ASC`
	limit := last
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.Draw
	for rows.Next() {
		var drawnAt, numbers string
		if err := rows.Scan(&drawnAt, &numbers); err != nil {
			return nil, err
		}
		date, err := time.Parse(time.DateOnly, drawnAt)
		if err != nil {
			return nil, err
		}
		nums, err := decodeNumbers(numbers)
		if err != nil {
			return nil, err
		}
		records = append(records, model.Draw{Index: len(records), Date: date, Numbers: nums})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// CountDraws returns the total number of stored draws.
func (s *Store) CountDraws(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM draws`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func encodeNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "-")
}

func decodeNumbers(text string) ([]int, error) {
	parts := strings.Split(text, "-")
	numbers := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("corrupt numbers column %q: %w", text, err)
		}
		numbers[i] = n
	}
	return numbers, nil
}
