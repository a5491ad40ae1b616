package engine

import (
	"sort"
	"strings"

	"movie-explorer-service/internal/models"
)

// Match filters the given movies through every predicate and returns the
// survivors ranked by rating descending. The sort is stable, so movies with
// equal ratings keep their catalog order. An empty predicate list returns
// the whole input ranked; zero matches is a normal outcome, not an error.
func Match(items []models.Movie, preds []Predicate) []models.Movie {
	matched := make([]models.Movie, 0, len(items))
outer:
	for _, m := range items {
		for _, p := range preds {
			if !p(m) {
				continue outer
			}
		}
		matched = append(matched, m)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Rating > matched[j].Rating
	})
	return matched
}

// TopN returns the first min(n, len(items)) results. It never errors on
// short input.
func TopN(items []models.Movie, n int) []models.Movie {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

// Sort orders a result set in place by the given field. Supported fields
// are rating, year and title; anything else falls back to rating. Order is
// "asc" or "desc" (default desc for rating and year, asc for title).
func Sort(items []models.Movie, by, order string) {
	asc := order == "asc"
	var less func(a, b models.Movie) bool
	switch by {
	case "year":
		less = func(a, b models.Movie) bool { return a.Year < b.Year }
	case "title":
		asc = order != "desc"
		less = func(a, b models.Movie) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	default:
		less = func(a, b models.Movie) bool { return a.Rating < b.Rating }
	}

	sort.SliceStable(items, func(i, j int) bool {
		if asc {
			return less(items[i], items[j])
		}
		return less(items[j], items[i])
	})
}
