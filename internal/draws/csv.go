package draws

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/lotto/internal/model"
)

// LoadCSV reads draw records from a file with one draw per line in the form
// "date,n-n-n-n-n-n". Records are returned in file order.
func LoadCSV(path string, imp model.ImportConfig) ([]model.Draw, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only history file.
			_ = cerr
		}
	}()

	var records []model.Draw
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if imp.HasHeader && line == 1 {
			continue
		}
		record, err := parseLine(text, imp.DateLayout)
		if err != nil {
			return nil, &RecordError{Index: len(records), Reason: fmt.Sprintf("line %d: %v", line, err)}
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("history file %s is empty", path)
	}
	return records, nil
}

func parseLine(text, dateLayout string) (model.Draw, error) {
	dateField, numberField, ok := strings.Cut(text, ",")
	if !ok {
		return model.Draw{}, fmt.Errorf("expected 'date,numbers'")
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(dateField))
	if err != nil {
		return model.Draw{}, fmt.Errorf("invalid date: %w", err)
	}
	parts := strings.Split(strings.TrimSpace(numberField), "-")
	numbers := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return model.Draw{}, fmt.Errorf("invalid number %q", part)
		}
		numbers = append(numbers, n)
	}
	return model.Draw{Date: date, Numbers: numbers}, nil
}
