// Package dataset reads the merged CSV back for the analyze and server
// binaries. The CSV is the sole hand-off artifact between the pipeline and
// everything downstream.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"go-jobinsights/internal/schema"
)

// Load reads the merged dataset at path. A missing file is an operator
// error: the scraper has to run first.
func Load(path string) ([]schema.Row, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s not found: run the scraper first to build the dataset", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Read(f, path)
}

// Read parses dataset CSV content. The header must match the canonical
// schema exactly; data rows are padded or truncated to the fixed width so a
// hand-edited file cannot smuggle malformed shapes downstream.
func Read(r io.Reader, name string) ([]schema.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s is empty", name)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if strings.Join(header, ",") != strings.Join(schema.Header, ",") {
		return nil, fmt.Errorf("%s has header %q, want %q", name, strings.Join(header, ","), strings.Join(schema.Header, ","))
	}

	var rows []schema.Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		row := make(schema.Row, schema.FieldCount)
		for i := 0; i < schema.FieldCount && i < len(rec); i++ {
			row[i] = rec[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
