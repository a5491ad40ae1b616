package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"movie-explorer-service/internal/models"
)

// exportHeader fixes the exported column order. It is a public contract for
// downloaded result sets.
var exportHeader = []string{"title", "year", "rating", "genres", "directors", "stars", "duration"}

// ExportCSV serializes a result set into CSV for download.
func ExportCSV(movies []models.Movie) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("write export header: %w", err)
	}
	for _, m := range movies {
		record := []string{
			m.Title,
			strconv.Itoa(m.Year),
			strconv.FormatFloat(m.Rating, 'f', -1, 64),
			m.GenreLine(),
			m.DirectorLine(),
			m.StarLine(),
			m.Duration,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write export row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush export: %w", err)
	}
	return buf.Bytes(), nil
}
