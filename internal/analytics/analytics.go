// Package analytics computes grouped statistics over the catalog or any
// filtered subset. Every function is pure: results depend only on the
// movies passed in.
package analytics

import (
	"math"
	"sort"
	"strconv"

	"movie-explorer-service/internal/models"
)

// KeyFunc derives zero or more group keys from one movie. A movie with two
// directors contributes to both director groups.
type KeyFunc func(models.Movie) []string

// DirectorKey groups by individual director name.
func DirectorKey(m models.Movie) []string {
	return m.Directors
}

// DecadeKey groups by release decade.
func DecadeKey(m models.Movie) []string {
	return []string{strconv.Itoa(m.Decade())}
}

// YearKey groups by release year.
func YearKey(m models.Movie) []string {
	return []string{strconv.Itoa(m.Year)}
}

// GenreComboKey groups by the exact comma-joined genre combination. Movies
// without genres contribute no key.
func GenreComboKey(m models.Movie) []string {
	if len(m.Genres) == 0 {
		return nil
	}
	return []string{m.GenreLine()}
}

// CountsByField flattens a delimited multi-value field and returns token
// frequencies. Supported fields are genres, directors and stars; an
// unknown field yields an empty map.
func CountsByField(items []models.Movie, field string) map[string]int {
	counts := make(map[string]int)
	for _, m := range items {
		var tokens []string
		switch field {
		case "genres":
			tokens = m.Genres
		case "directors":
			tokens = m.Directors
		case "stars":
			tokens = m.Stars
		}
		for _, t := range tokens {
			counts[t]++
		}
	}
	return counts
}

// GroupCount counts movies per derived key.
func GroupCount(items []models.Movie, key KeyFunc) map[string]int {
	counts := make(map[string]int)
	for _, m := range items {
		for _, k := range key(m) {
			counts[k]++
		}
	}
	return counts
}

// AverageRatingByGroup computes the mean rating per derived key, dropping
// groups with fewer than minGroupSize members.
func AverageRatingByGroup(items []models.Movie, key KeyFunc, minGroupSize int) map[string]float64 {
	if minGroupSize < 1 {
		minGroupSize = 1
	}
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, m := range items {
		for _, k := range key(m) {
			sums[k] += m.Rating
			counts[k]++
		}
	}

	averages := make(map[string]float64, len(sums))
	for k, sum := range sums {
		if counts[k] < minGroupSize {
			continue
		}
		averages[k] = sum / float64(counts[k])
	}
	return averages
}

// RatingStats summarizes the rating field of a movie set.
type RatingStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	// StdDev is the sample standard deviation (n-1 denominator); zero for
	// fewer than two movies.
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// ComputeRatingStats computes summary statistics over the rating field.
func ComputeRatingStats(items []models.Movie) RatingStats {
	stats := RatingStats{Count: len(items)}
	if len(items) == 0 {
		return stats
	}

	ratings := make([]float64, len(items))
	var sum float64
	for i, m := range items {
		ratings[i] = m.Rating
		sum += m.Rating
	}
	sort.Float64s(ratings)

	stats.Mean = sum / float64(len(ratings))
	stats.Min = ratings[0]
	stats.Max = ratings[len(ratings)-1]

	mid := len(ratings) / 2
	if len(ratings)%2 == 0 {
		stats.Median = (ratings[mid-1] + ratings[mid]) / 2
	} else {
		stats.Median = ratings[mid]
	}

	if len(ratings) > 1 {
		var sq float64
		for _, r := range ratings {
			d := r - stats.Mean
			sq += d * d
		}
		stats.StdDev = math.Sqrt(sq / float64(len(ratings)-1))
	}

	return stats
}

// Overview holds the headline catalog metrics.
type Overview struct {
	TotalMovies  int     `json:"total_movies"`
	MeanRating   float64 `json:"mean_rating"`
	YearMin      int     `json:"year_min"`
	YearMax      int     `json:"year_max"`
	UniqueGenres int     `json:"unique_genres"`
}

// ComputeOverview computes the headline metrics for a movie set.
func ComputeOverview(items []models.Movie) Overview {
	o := Overview{TotalMovies: len(items)}
	if len(items) == 0 {
		return o
	}

	genres := make(map[string]bool)
	var sum float64
	o.YearMin = items[0].Year
	o.YearMax = items[0].Year
	for _, m := range items {
		sum += m.Rating
		if m.Year < o.YearMin {
			o.YearMin = m.Year
		}
		if m.Year > o.YearMax {
			o.YearMax = m.Year
		}
		for _, g := range m.Genres {
			genres[g] = true
		}
	}
	o.MeanRating = sum / float64(len(items))
	o.UniqueGenres = len(genres)
	return o
}

// CountEntry is one (key, count) aggregate row.
type CountEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// SortedCounts converts a frequency map into rows sorted by count
// descending, ties broken by key so output is deterministic.
func SortedCounts(counts map[string]int) []CountEntry {
	entries := make([]CountEntry, 0, len(counts))
	for k, c := range counts {
		entries = append(entries, CountEntry{Key: k, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// AverageEntry is one (key, average) aggregate row.
type AverageEntry struct {
	Key     string  `json:"key"`
	Average float64 `json:"average"`
}

// SortedAverages converts an average map into rows sorted by average
// descending, ties broken by key.
func SortedAverages(averages map[string]float64) []AverageEntry {
	entries := make([]AverageEntry, 0, len(averages))
	for k, a := range averages {
		entries = append(entries, AverageEntry{Key: k, Average: a})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Average != entries[j].Average {
			return entries[i].Average > entries[j].Average
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}
