// Package output persists run artifacts as CSV files, creating parent
// directories as needed.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"go-jobinsights/internal/schema"
)

// WriteJobs writes the merged dataset to path: the canonical header followed
// by one row per unique job.
func WriteJobs(path string, rows []schema.Row) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, r)
	}
	return WriteRecords(path, schema.Header, records)
}

// WriteRecords writes an arbitrary header + records CSV.
func WriteRecords(path string, header []string, records [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}
