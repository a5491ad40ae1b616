package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-explorer-service/internal/catalog"
	"movie-explorer-service/internal/models"
)

const fixtureCSV = `title,year,rating,genres,directors,stars,duration
The Shawshank Redemption,1994,9.3,Drama,Frank Darabont,"Tim Robbins, Morgan Freeman",2h 22m
The Godfather,1972,9.2,"Crime, Drama",Francis Ford Coppola,"Marlon Brando, Al Pacino",2h 55m
The Dark Knight,2008,9.0,"Action, Crime, Drama",Christopher Nolan,"Christian Bale, Heath Ledger",2h 32m
12 Angry Men,1957,9.0,"Crime, Drama",Sidney Lumet,"Henry Fonda, Lee J. Cobb",1h 36m
The Matrix,1999,8.7,"Action, Sci-Fi","Lana Wachowski, Lilly Wachowski",Keanu Reeves,2h 16m
Inception,2010,8.8,"Action, Adventure, Sci-Fi",Christopher Nolan,Leonardo DiCaprio,2h 28m
Seven Samurai,1954,8.6,"Action, Drama",Akira Kurosawa,Toshiro Mifune,3h 27m
Goodfellas,1990,8.7,"Biography, Crime, Drama",Martin Scorsese,"Robert De Niro, Ray Liotta",2h 25m
`

func newTestService(t *testing.T) *ExplorerService {
	t.Helper()
	cat, err := catalog.Load(strings.NewReader(fixtureCSV))
	require.NoError(t, err)
	return NewExplorerService(cat, nil)
}

func resultTitles(movies []models.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

func TestRunPreferenceMatch(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.RunPreferenceMatch(models.PreferenceQuery{
		Mood:      models.MoodTense,
		MinRating: 8.8,
	}, 10)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalMatches)
	assert.Equal(t, []string{"The Godfather", "The Dark Knight", "12 Angry Men"}, resultTitles(resp.Movies))
	assert.NotEmpty(t, resp.GeneratedAt)
}

func TestRunPreferenceMatchLimit(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.RunPreferenceMatch(models.PreferenceQuery{}, 3)
	require.NoError(t, err)

	assert.Equal(t, 8, resp.TotalMatches)
	require.Len(t, resp.Movies, 3)
	assert.Equal(t, "The Shawshank Redemption", resp.Movies[0].Title)
}

func TestRunPreferenceMatchEmptyResult(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.RunPreferenceMatch(models.PreferenceQuery{
		Mood:     models.MoodRomantic,
		Duration: models.DurationEpic,
		Era:      models.EraRecent,
	}, 10)
	require.NoError(t, err)
	assert.Zero(t, resp.TotalMatches)
	assert.Empty(t, resp.Movies)
}

func TestRunFreeQuerySortOptions(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.RunFreeQuery(models.FreeQuery{}, "year", "asc", 0)
	require.NoError(t, err)
	require.Len(t, resp.Movies, 8)
	assert.Equal(t, "Seven Samurai", resp.Movies[0].Title)
	assert.Equal(t, "Inception", resp.Movies[7].Title)

	resp, err = svc.RunFreeQuery(models.FreeQuery{}, "title", "", 0)
	require.NoError(t, err)
	assert.Equal(t, "12 Angry Men", resp.Movies[0].Title)

	resp, err = svc.RunFreeQuery(models.FreeQuery{}, "", "", 2)
	require.NoError(t, err)
	assert.Equal(t, 8, resp.TotalMatches)
	require.Len(t, resp.Movies, 2)
	assert.Equal(t, "The Shawshank Redemption", resp.Movies[0].Title)
}

func TestCompareMoviesValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CompareMovies([]string{"The Matrix"})
	assert.Error(t, err)

	_, err = svc.CompareMovies([]string{"The Matrix", "The Matrix"})
	assert.Error(t, err)

	_, err = svc.CompareMovies([]string{"A", "B", "C", "D"})
	assert.Error(t, err)

	_, err = svc.CompareMovies([]string{"The Matrix", "Unknown Movie"})
	assert.ErrorIs(t, err, models.ErrMovieNotFound)

	movies, err := svc.CompareMovies([]string{"Inception", "The Matrix", "Goodfellas"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Inception", "The Matrix", "Goodfellas"}, resultTitles(movies))
}

func TestFieldDomain(t *testing.T) {
	svc := newTestService(t)

	genres, err := svc.FieldDomain("genres")
	require.NoError(t, err)
	assert.Contains(t, genres, "Sci-Fi")

	directors, err := svc.FieldDomain("directors")
	require.NoError(t, err)
	assert.Contains(t, directors, "Christopher Nolan")

	_, err = svc.FieldDomain("bogus")
	assert.Error(t, err)
}

func TestSuggestTitles(t *testing.T) {
	svc := newTestService(t)

	suggestions := svc.SuggestTitles("matrix", 5)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "The Matrix", suggestions[0])

	// Empty query falls back to an alphabetical prefix.
	suggestions = svc.SuggestTitles("", 3)
	require.Len(t, suggestions, 3)
	assert.Equal(t, "12 Angry Men", suggestions[0])

	assert.Empty(t, svc.SuggestTitles("zzzzzz", 5))
}

func TestTopLists(t *testing.T) {
	svc := newTestService(t)

	top := svc.TopRated(3)
	assert.Equal(t, []string{"The Shawshank Redemption", "The Godfather", "The Dark Knight"}, resultTitles(top))

	nineties := svc.TopByDecade(1990, 10)
	assert.Equal(t, []string{"The Shawshank Redemption", "The Matrix", "Goodfellas"}, resultTitles(nineties))

	scifi := svc.TopByGenre("Sci-Fi", 10)
	assert.Equal(t, []string{"Inception", "The Matrix"}, resultTitles(scifi))

	nolan := svc.ByDirector("nolan")
	assert.Equal(t, []string{"The Dark Knight", "Inception"}, resultTitles(nolan))

	recent := svc.RecentlyReleased(2)
	assert.Equal(t, []string{"Inception", "The Dark Knight"}, resultTitles(recent))
}
