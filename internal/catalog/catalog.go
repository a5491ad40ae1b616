// Package catalog holds the immutable in-memory movie catalog. It is loaded
// once at startup and only read afterwards, so it is safe to share across
// request handlers without locking.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"movie-explorer-service/internal/models"
)

// Catalog is the read-only movie collection plus derived indexes built once
// at load time.
type Catalog struct {
	movies  []models.Movie
	byTitle map[string]int

	genres    []string
	directors []string
	stars     []string
	titles    []string

	skipped       int
	parseWarnings int
}

// row is one raw source record before validation.
type row struct {
	title     string
	year      string
	rating    string
	genres    string
	directors string
	stars     string
	duration  string
}

// build validates raw rows into a Catalog. Rows missing a title or a valid
// year are skipped and counted; unparsable rating or duration values only
// raise the parse-warning count, the row itself is kept.
func build(rows []row) *Catalog {
	c := &Catalog{
		byTitle: make(map[string]int),
	}

	genreSet := make(map[string]bool)
	directorSet := make(map[string]bool)
	starSet := make(map[string]bool)

	for _, r := range rows {
		title := strings.TrimSpace(r.title)
		year, yearErr := strconv.Atoi(strings.TrimSpace(r.year))
		if title == "" || yearErr != nil {
			c.skipped++
			continue
		}

		m := models.Movie{
			Title:     title,
			Year:      year,
			Genres:    SplitList(r.genres),
			Directors: SplitList(r.directors),
			Stars:     SplitList(r.stars),
			Duration:  strings.TrimSpace(r.duration),
		}

		if s := strings.TrimSpace(r.rating); s != "" {
			rating, err := strconv.ParseFloat(s, 64)
			if err != nil {
				c.parseWarnings++
			} else {
				m.Rating = rating
			}
		}

		m.RuntimeMinutes = ParseDuration(m.Duration)
		if m.Duration != "" && m.RuntimeMinutes == 0 {
			c.parseWarnings++
		}

		if _, dup := c.byTitle[title]; !dup {
			c.byTitle[title] = len(c.movies)
		}
		c.movies = append(c.movies, m)

		for _, g := range m.Genres {
			genreSet[g] = true
		}
		for _, d := range m.Directors {
			directorSet[d] = true
		}
		for _, s := range m.Stars {
			starSet[s] = true
		}
	}

	c.genres = sortedKeys(genreSet)
	c.directors = sortedKeys(directorSet)
	c.stars = sortedKeys(starSet)

	c.titles = make([]string, 0, len(c.movies))
	for _, m := range c.movies {
		c.titles = append(c.titles, m.Title)
	}
	sort.Strings(c.titles)

	return c
}

// All returns every movie in load order. Callers must not modify the slice.
func (c *Catalog) All() []models.Movie {
	return c.movies
}

// Len returns the number of loaded movies.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Skipped returns how many source rows failed required-field validation.
func (c *Catalog) Skipped() int {
	return c.skipped
}

// ParseWarnings returns how many optional fields could not be parsed.
func (c *Catalog) ParseWarnings() int {
	return c.parseWarnings
}

// ByTitle returns the first movie with the given exact title.
func (c *Catalog) ByTitle(title string) (models.Movie, bool) {
	idx, ok := c.byTitle[title]
	if !ok {
		return models.Movie{}, false
	}
	return c.movies[idx], true
}

// Genres returns the distinct genre tags, sorted.
func (c *Catalog) Genres() []string {
	return c.genres
}

// Directors returns the distinct director names, sorted.
func (c *Catalog) Directors() []string {
	return c.directors
}

// Stars returns the distinct star names, sorted.
func (c *Catalog) Stars() []string {
	return c.stars
}

// Titles returns every title, sorted.
func (c *Catalog) Titles() []string {
	return c.titles
}

// SplitList splits a comma-delimited multi-value field into trimmed tokens,
// dropping empty ones. Returns nil for an empty field.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ParseDuration converts an "XhYm" duration string into total minutes.
// A value without an hour token is unparsable and yields 0.
func ParseDuration(s string) int {
	s = strings.TrimSpace(s)
	hIdx := strings.Index(s, "h")
	if hIdx <= 0 {
		return 0
	}
	hours, err := strconv.Atoi(strings.TrimSpace(s[:hIdx]))
	if err != nil || hours < 0 {
		return 0
	}

	minutes := 0
	rest := strings.TrimSpace(s[hIdx+1:])
	if rest != "" {
		rest = strings.TrimSuffix(rest, "m")
		m, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || m < 0 {
			return 0
		}
		minutes = m
	}

	return hours*60 + minutes
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
