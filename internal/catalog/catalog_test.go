package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSVSkipsInvalidRows(t *testing.T) {
	cat, err := LoadCSV("testdata/movies.csv")
	require.NoError(t, err)

	// Two rows miss a required field (title, year) and must be skipped.
	assert.Equal(t, 8, cat.Len())
	assert.Equal(t, 2, cat.Skipped())
	// "140 min" has no hour token.
	assert.Equal(t, 1, cat.ParseWarnings())
}

func TestLoadPreservesOrderAndParsesFields(t *testing.T) {
	cat, err := LoadCSV("testdata/movies.csv")
	require.NoError(t, err)

	movies := cat.All()
	require.NotEmpty(t, movies)

	first := movies[0]
	assert.Equal(t, "The Shawshank Redemption", first.Title)
	assert.Equal(t, 1994, first.Year)
	assert.InDelta(t, 9.3, first.Rating, 0.001)
	assert.Equal(t, []string{"Drama"}, first.Genres)
	assert.Equal(t, []string{"Tim Robbins", "Morgan Freeman"}, first.Stars)
	assert.Equal(t, 142, first.RuntimeMinutes)
	assert.Equal(t, 1990, first.Decade())

	godfather, ok := cat.ByTitle("The Godfather")
	require.True(t, ok)
	assert.Equal(t, []string{"Crime", "Drama"}, godfather.Genres)
	assert.Equal(t, 175, godfather.RuntimeMinutes)
}

func TestLoadHandlesMissingOptionalFields(t *testing.T) {
	cat, err := LoadCSV("testdata/movies.csv")
	require.NoError(t, err)

	m, ok := cat.ByTitle("No Extras")
	require.True(t, ok)
	assert.Empty(t, m.Genres)
	assert.Empty(t, m.Directors)
	assert.Empty(t, m.Stars)
	assert.Zero(t, m.RuntimeMinutes)
}

func TestLoadRequiresHeaderColumns(t *testing.T) {
	_, err := Load(strings.NewReader("title,rating\nA,8.0\n"))
	assert.Error(t, err)

	_, err = Load(strings.NewReader("year,rating\n1990,8.0\n"))
	assert.Error(t, err)
}

func TestFieldDomains(t *testing.T) {
	cat, err := LoadCSV("testdata/movies.csv")
	require.NoError(t, err)

	genres := cat.Genres()
	assert.Contains(t, genres, "Sci-Fi")
	assert.Contains(t, genres, "Drama")
	// Domains are deduplicated: Drama appears in several movies.
	counts := map[string]int{}
	for _, g := range genres {
		counts[g]++
	}
	assert.Equal(t, 1, counts["Drama"])

	directors := cat.Directors()
	assert.Contains(t, directors, "Lana Wachowski")
	assert.Contains(t, directors, "Lilly Wachowski")

	titles := cat.Titles()
	assert.Len(t, titles, cat.Len())
	assert.True(t, sortedStrings(titles))
}

func TestByTitleMissing(t *testing.T) {
	cat, err := LoadCSV("testdata/movies.csv")
	require.NoError(t, err)

	_, ok := cat.ByTitle("Not In Catalog")
	assert.False(t, ok)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList("  "))
	assert.Nil(t, SplitList(" , ,"))
	assert.Equal(t, []string{"Crime", "Drama"}, SplitList("Crime, Drama"))
	assert.Equal(t, []string{"A", "B", "C"}, SplitList(" A ,B,  C "))
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2h 22m", 142},
		{"1h 36m", 96},
		{"3h", 180},
		{"2h", 120},
		{"2h 4m", 124},
		{"", 0},
		{"140 min", 0},
		{"h 30m", 0},
		{"abc", 0},
		{"2h xm", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDuration(tt.in), "input %q", tt.in)
	}
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}
