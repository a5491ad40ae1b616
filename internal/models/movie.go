package models

import (
	"errors"
	"strings"
)

// ErrMovieNotFound is returned when a title lookup finds no catalog entry.
var ErrMovieNotFound = errors.New("movie not found")

// Movie is one catalog record. The catalog is immutable after load, so a
// Movie is never modified once constructed.
type Movie struct {
	Title     string   `json:"title"`
	Year      int      `json:"year"`
	Rating    float64  `json:"rating"`
	Genres    []string `json:"genres"`
	Directors []string `json:"directors"`
	Stars     []string `json:"stars"`
	// Duration is the raw source text, e.g. "2h 22m".
	Duration string `json:"duration"`
	// RuntimeMinutes is parsed from Duration at load time; 0 means the
	// duration was missing or unparsable.
	RuntimeMinutes int `json:"runtime_minutes"`
}

// Decade returns the release year truncated to the nearest decade.
func (m Movie) Decade() int {
	return (m.Year / 10) * 10
}

// GenreLine returns the comma-joined genre list as it appeared in the source.
func (m Movie) GenreLine() string {
	return strings.Join(m.Genres, ", ")
}

// DirectorLine returns the comma-joined director names.
func (m Movie) DirectorLine() string {
	return strings.Join(m.Directors, ", ")
}

// StarLine returns the comma-joined star names.
func (m Movie) StarLine() string {
	return strings.Join(m.Stars, ", ")
}
