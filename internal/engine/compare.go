package engine

import (
	"fmt"

	"movie-explorer-service/internal/catalog"
	"movie-explorer-service/internal/models"
)

// Compare resolves each title to its catalog entry, returning movies in the
// requested order. Titles are matched exactly; a duplicate title resolves
// to its first catalog occurrence. Any unknown title fails the whole
// comparison with ErrMovieNotFound, since silently dropping a requested
// movie would misrepresent the comparison.
func Compare(cat *catalog.Catalog, titles []string) ([]models.Movie, error) {
	movies := make([]models.Movie, 0, len(titles))
	for _, title := range titles {
		m, ok := cat.ByTitle(title)
		if !ok {
			return nil, fmt.Errorf("%w: %q", models.ErrMovieNotFound, title)
		}
		movies = append(movies, m)
	}
	return movies, nil
}
