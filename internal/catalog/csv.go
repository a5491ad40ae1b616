package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LoadCSV loads the catalog from a CSV file on disk.
func LoadCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	cat, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", path, err)
	}
	return cat, nil
}

// Load parses a CSV catalog source. The first record is the header; column
// order is free but title and year columns are required. Rows failing
// required-field validation are skipped and counted, never abort the load.
func Load(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["title"]; !ok {
		return nil, fmt.Errorf("catalog source has no title column")
	}
	if _, ok := cols["year"]; !ok {
		return nil, fmt.Errorf("catalog source has no year column")
	}

	field := func(record []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	var rows []row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}
		rows = append(rows, row{
			title:     field(record, "title"),
			year:      field(record, "year"),
			rating:    field(record, "rating"),
			genres:    field(record, "genres"),
			directors: field(record, "directors"),
			stars:     field(record, "stars"),
			duration:  field(record, "duration"),
		})
	}

	cat := build(rows)
	if cat.skipped > 0 || cat.parseWarnings > 0 {
		slog.Warn("catalog loaded with issues",
			"movies", cat.Len(), "skipped_rows", cat.skipped, "parse_warnings", cat.parseWarnings)
	} else {
		slog.Info("catalog loaded", "movies", cat.Len())
	}
	return cat, nil
}
