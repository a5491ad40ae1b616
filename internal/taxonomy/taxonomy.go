// Package taxonomy translates qualitative quiz answers into concrete genre
// tags. The mapping tables are fixed; matching against an item's genres is
// case-insensitive substring containment so a tag like "Sci-Fi" also hits
// raw genre text such as "Sci-Fi, Adventure".
package taxonomy

import (
	"strings"

	"movie-explorer-service/internal/models"
)

var moodGenres = map[models.Mood][]string{
	models.MoodExcited:    {"Action", "Adventure", "Thriller"},
	models.MoodThoughtful: {"Drama", "Biography", "Historical"},
	models.MoodRelaxed:    {"Comedy", "Romance", "Family"},
	models.MoodTense:      {"Thriller", "Crime", "Mystery", "Horror"},
	models.MoodRomantic:   {"Romance", "Drama", "Musical"},
}

var storyGenres = map[models.StoryType][]string{
	models.StoryAction:     {"Action", "Adventure"},
	models.StoryMystery:    {"Mystery", "Crime", "Detective"},
	models.StoryRomance:    {"Romance", "Drama", "Romantic"},
	models.StoryComedy:     {"Comedy"},
	models.StorySciFi:      {"Sci-Fi", "Fantasy", "Science Fiction"},
	models.StoryHistorical: {"Historical", "Period", "Epic", "History"},
	models.StoryThriller:   {"Thriller", "Suspense", "Psychological"},
	models.StoryWar:        {"War", "Military"},
	models.StoryBiography:  {"Biography", "Biopic", "Docudrama"},
}

// MoodGenres returns the genre tags mapped to a mood. An unknown mood maps
// to no tags, which callers treat as no constraint.
func MoodGenres(m models.Mood) []string {
	return moodGenres[m]
}

// ExpandStoryTypes unions the genre tags of each story type, preserving
// first-seen order. Empty input yields an empty set (no constraint).
func ExpandStoryTypes(types []models.StoryType) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, st := range types {
		for _, tag := range storyGenres[st] {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// TagMatches reports whether a mapped genre tag matches an item's raw
// comma-joined genre text.
func TagMatches(tag, genreLine string) bool {
	return strings.Contains(strings.ToLower(genreLine), strings.ToLower(tag))
}
