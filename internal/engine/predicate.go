// Package engine builds predicates from queries and applies them to the
// catalog, producing ranked result sets.
package engine

import (
	"strings"

	"movie-explorer-service/internal/models"
	"movie-explorer-service/internal/taxonomy"
)

// Predicate is a boolean test over one movie. A query is the conjunction of
// its predicates: a movie matches when every predicate holds.
type Predicate func(models.Movie) bool

// BuildPreference translates quiz answers into an ordered predicate list.
// Cheap numeric checks come first; ordering never changes the result set.
func BuildPreference(q models.PreferenceQuery) []Predicate {
	var preds []Predicate

	if q.MinRating > 0 {
		preds = append(preds, ratingAtLeast(q.MinRating))
	}
	if p := eraPredicate(q.Era); p != nil {
		preds = append(preds, p)
	}
	if p := durationPredicate(q.Duration); p != nil {
		preds = append(preds, p)
	}
	if tags := taxonomy.MoodGenres(q.Mood); len(tags) > 0 {
		preds = append(preds, genreTagsAny(tags))
	}
	if tags := taxonomy.ExpandStoryTypes(q.StoryTypes); len(tags) > 0 {
		preds = append(preds, genreTagsAny(tags))
	}
	if d := strings.TrimSpace(q.Director); d != "" && !strings.EqualFold(d, "any") {
		preds = append(preds, personContains(d, models.Movie.DirectorLine))
	}
	if a := strings.TrimSpace(q.Actor); a != "" {
		preds = append(preds, personContains(a, models.Movie.StarLine))
	}

	return preds
}

// BuildFree translates an ad hoc search into an ordered predicate list.
func BuildFree(q models.FreeQuery) []Predicate {
	var preds []Predicate

	if q.YearFrom > 0 {
		from := q.YearFrom
		preds = append(preds, func(m models.Movie) bool { return m.Year >= from })
	}
	if q.YearTo > 0 {
		to := q.YearTo
		preds = append(preds, func(m models.Movie) bool { return m.Year <= to })
	}
	if q.MinRating > 0 {
		preds = append(preds, ratingAtLeast(q.MinRating))
	}
	if len(q.Genres) > 0 {
		preds = append(preds, genresExactAny(q.Genres))
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		preds = append(preds, freeTextAny(s))
	}

	return preds
}

func ratingAtLeast(min float64) Predicate {
	return func(m models.Movie) bool { return m.Rating >= min }
}

// durationPredicate returns nil for "any". Bucket boundaries in minutes:
// <2h is (0,120), 2-3h is [120,180], >3h is (180,inf). Movies whose
// duration could not be parsed fail every active bucket.
func durationPredicate(b models.DurationBucket) Predicate {
	switch b {
	case models.DurationShort:
		return func(m models.Movie) bool {
			return m.RuntimeMinutes > 0 && m.RuntimeMinutes < 120
		}
	case models.DurationStandard:
		return func(m models.Movie) bool {
			return m.RuntimeMinutes >= 120 && m.RuntimeMinutes <= 180
		}
	case models.DurationEpic:
		return func(m models.Movie) bool {
			return m.RuntimeMinutes > 180
		}
	default:
		return nil
	}
}

// eraPredicate returns nil for "any". Buckets are half-open: a boundary
// year belongs to the bucket starting at it.
func eraPredicate(e models.EraBucket) Predicate {
	switch e {
	case models.EraClassic:
		return func(m models.Movie) bool { return m.Year < 1980 }
	case models.EraGolden:
		return func(m models.Movie) bool { return m.Year >= 1980 && m.Year < 2000 }
	case models.EraModern:
		return func(m models.Movie) bool { return m.Year >= 2000 && m.Year < 2010 }
	case models.EraRecent:
		return func(m models.Movie) bool { return m.Year >= 2010 }
	default:
		return nil
	}
}

// genreTagsAny matches when any mapped tag is a case-insensitive substring
// of the movie's joined genre text.
func genreTagsAny(tags []string) Predicate {
	lowered := make([]string, len(tags))
	for i, t := range tags {
		lowered[i] = strings.ToLower(t)
	}
	return func(m models.Movie) bool {
		line := strings.ToLower(m.GenreLine())
		for _, t := range lowered {
			if strings.Contains(line, t) {
				return true
			}
		}
		return false
	}
}

// genresExactAny is the free-search genre filter. Unlike the quiz mapping
// it is case-sensitive containment, matching the selection lists it is fed
// from (values come straight out of the catalog's genre domain).
func genresExactAny(genres []string) Predicate {
	return func(m models.Movie) bool {
		line := m.GenreLine()
		for _, g := range genres {
			if strings.Contains(line, g) {
				return true
			}
		}
		return false
	}
}

func personContains(needle string, line func(models.Movie) string) Predicate {
	lowered := strings.ToLower(needle)
	return func(m models.Movie) bool {
		return strings.Contains(strings.ToLower(line(m)), lowered)
	}
}

// freeTextAny matches when the text appears case-insensitively in the
// title, the directors or the stars.
func freeTextAny(text string) Predicate {
	lowered := strings.ToLower(text)
	return func(m models.Movie) bool {
		return strings.Contains(strings.ToLower(m.Title), lowered) ||
			strings.Contains(strings.ToLower(m.DirectorLine()), lowered) ||
			strings.Contains(strings.ToLower(m.StarLine()), lowered)
	}
}
