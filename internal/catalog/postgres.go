package catalog

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// LoadPostgres loads the catalog once from a movies table carrying the same
// column contract as the CSV source. The table is read-only input, not a
// persistence layer; nothing is written back after load.
func LoadPostgres(db *sql.DB) (*Catalog, error) {
	dbRows, err := db.Query(`
		SELECT COALESCE(title, ''), COALESCE(year::text, ''),
			COALESCE(rating::text, ''), COALESCE(genres, ''),
			COALESCE(directors, ''), COALESCE(stars, ''), COALESCE(duration, '')
		FROM movies
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query movies table: %w", err)
	}
	defer dbRows.Close()

	var rows []row
	for dbRows.Next() {
		var r row
		if err := dbRows.Scan(&r.title, &r.year, &r.rating, &r.genres, &r.directors, &r.stars, &r.duration); err != nil {
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		rows = append(rows, r)
	}
	if err := dbRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies table: %w", err)
	}

	cat := build(rows)
	if cat.skipped > 0 || cat.parseWarnings > 0 {
		slog.Warn("catalog loaded from postgres with issues",
			"movies", cat.Len(), "skipped_rows", cat.skipped, "parse_warnings", cat.parseWarnings)
	} else {
		slog.Info("catalog loaded from postgres", "movies", cat.Len())
	}
	return cat, nil
}
