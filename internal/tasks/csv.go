package tasks

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Column order of the persisted file. Load tolerates files that miss some
// of these (the missing cells become empty text) and drops any extras.
var csvColumns = []string{
	"task_id",
	"title",
	"description",
	"owner",
	"status",
	"created_at",
	"last_updated_at",
}

// SaveCSV overwrites path with the given tasks, creating parent directories
// as needed. No row index column is written.
func SaveCSV(tasks []Task, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to save tasks to CSV: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to save tasks to CSV: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvColumns); err != nil {
		return fmt.Errorf("failed to save tasks to CSV: %w", err)
	}
	for _, t := range tasks {
		row := []string{
			t.ID,
			t.Title,
			t.Description,
			t.Owner,
			string(t.Status),
			t.CreatedAt.UTC().Format(time.RFC3339),
			t.LastUpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to save tasks to CSV: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to save tasks to CSV: %w", err)
	}
	return nil
}

// LoadCSV reads tasks back in file order. Missing columns are created and
// filled with empty text rather than failing the load.
func LoadCSV(path string) ([]Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks from CSV: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks from CSV: %w", err)
	}
	if len(records) == 0 {
		return []Task{}, nil
	}

	colIndex := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		colIndex[name] = i
	}

	cell := func(row []string, col string) string {
		i, ok := colIndex[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	out := make([]Task, 0, len(records)-1)
	for _, row := range records[1:] {
		out = append(out, Task{
			ID:            cell(row, "task_id"),
			Title:         cell(row, "title"),
			Description:   cell(row, "description"),
			Owner:         cell(row, "owner"),
			Status:        Status(cell(row, "status")),
			CreatedAt:     parseTimestamp(cell(row, "created_at")),
			LastUpdatedAt: parseTimestamp(cell(row, "last_updated_at")),
		})
	}
	return out, nil
}

// parseTimestamp accepts RFC 3339 and the zone-less ISO form older exports
// used. Unparseable text becomes the zero time rather than failing the row.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse("2006-01-02T15:04:05.999999999", s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
