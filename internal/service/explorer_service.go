package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sahilm/fuzzy"

	"movie-explorer-service/internal/catalog"
	"movie-explorer-service/internal/engine"
	"movie-explorer-service/internal/models"
)

const (
	recommendationCacheTTL = 10 * time.Minute
	searchCacheTTL         = 5 * time.Minute
	analyticsCacheTTL      = 30 * time.Minute
)

// ExplorerService orchestrates the catalog, the matching engine and the
// aggregation engine behind the HTTP handlers. The catalog is immutable, so
// one instance serves concurrent requests without locking.
type ExplorerService struct {
	cat   *catalog.Catalog
	redis *redis.Client
}

// NewExplorerService creates a new ExplorerService. rdb may be nil; the
// service then runs without caching.
func NewExplorerService(cat *catalog.Catalog, rdb *redis.Client) *ExplorerService {
	return &ExplorerService{cat: cat, redis: rdb}
}

// Catalog exposes the underlying catalog for field-domain lookups.
func (s *ExplorerService) Catalog() *catalog.Catalog {
	return s.cat
}

// RunPreferenceMatch answers a quiz with the top-limit ranked matches.
func (s *ExplorerService) RunPreferenceMatch(q models.PreferenceQuery, limit int) (*models.RecommendationResponse, error) {
	q.Normalize()
	if limit <= 0 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("recommend:%s:%s:%s:%s:%.1f:%s:%s:%d",
		q.Mood, joinStoryTypes(q.StoryTypes), q.Duration, q.Era,
		q.MinRating, strings.ToLower(q.Director), strings.ToLower(q.Actor), limit)

	if cached, err := s.getFromCache(cacheKey); err == nil {
		var resp models.RecommendationResponse
		if json.Unmarshal([]byte(cached), &resp) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return &resp, nil
		}
	}

	matched := s.PreferenceMatches(q)
	resp := &models.RecommendationResponse{
		TotalMatches: len(matched),
		Movies:       engine.TopN(matched, limit),
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if data, err := json.Marshal(resp); err == nil {
		s.setCache(cacheKey, string(data), recommendationCacheTTL)
	}
	return resp, nil
}

// PreferenceMatches returns every movie satisfying the quiz answers, ranked.
// Used by RunPreferenceMatch and by the CSV export, which wants all matches.
func (s *ExplorerService) PreferenceMatches(q models.PreferenceQuery) []models.Movie {
	q.Normalize()
	return engine.Match(s.cat.All(), engine.BuildPreference(q))
}

// RunFreeQuery answers an ad hoc search. sortBy is rating, year or title;
// limit <= 0 returns every match.
func (s *ExplorerService) RunFreeQuery(q models.FreeQuery, sortBy, order string, limit int) (*models.SearchResponse, error) {
	cacheKey := fmt.Sprintf("search:%s:%d:%d:%.1f:%s:%s:%s:%d",
		strings.Join(q.Genres, "|"), q.YearFrom, q.YearTo, q.MinRating,
		strings.ToLower(q.Search), sortBy, order, limit)

	if cached, err := s.getFromCache(cacheKey); err == nil {
		var resp models.SearchResponse
		if json.Unmarshal([]byte(cached), &resp) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return &resp, nil
		}
	}

	matched := s.FreeQueryMatches(q, sortBy, order)
	resp := &models.SearchResponse{TotalMatches: len(matched), Movies: matched}
	if limit > 0 {
		resp.Movies = engine.TopN(matched, limit)
	}

	if data, err := json.Marshal(resp); err == nil {
		s.setCache(cacheKey, string(data), searchCacheTTL)
	}
	return resp, nil
}

// FreeQueryMatches returns every movie satisfying the search, sorted.
// Match already ranks by rating descending, so Sort only runs when the
// caller asks for a different order.
func (s *ExplorerService) FreeQueryMatches(q models.FreeQuery, sortBy, order string) []models.Movie {
	matched := engine.Match(s.cat.All(), engine.BuildFree(q))
	if sortBy == "" {
		sortBy = "rating"
	}
	if sortBy != "rating" || order == "asc" {
		engine.Sort(matched, sortBy, order)
	}
	return matched
}

// CompareMovies resolves two or three distinct titles for a side-by-side
// view. A missing title is a hard error, never silently skipped.
func (s *ExplorerService) CompareMovies(titles []string) ([]models.Movie, error) {
	distinct := make(map[string]bool, len(titles))
	for _, t := range titles {
		distinct[t] = true
	}
	if len(titles) < 2 || len(titles) > 3 || len(distinct) != len(titles) {
		return nil, fmt.Errorf("comparison requires 2 or 3 distinct titles, got %d", len(titles))
	}
	return engine.Compare(s.cat, titles)
}

// FieldDomain returns the distinct values of an enumerable catalog field,
// used to populate selection lists.
func (s *ExplorerService) FieldDomain(field string) ([]string, error) {
	switch field {
	case "genres":
		return s.cat.Genres(), nil
	case "directors":
		return s.cat.Directors(), nil
	case "stars":
		return s.cat.Stars(), nil
	case "titles":
		return s.cat.Titles(), nil
	default:
		return nil, fmt.Errorf("unknown field %q", field)
	}
}

// SuggestTitles fuzzy-matches catalog titles against a partial query. An
// empty query returns the first limit titles alphabetically.
func (s *ExplorerService) SuggestTitles(query string, limit int) []string {
	if limit <= 0 {
		limit = 10
	}
	titles := s.cat.Titles()
	if strings.TrimSpace(query) == "" {
		if limit > len(titles) {
			limit = len(titles)
		}
		return titles[:limit]
	}

	matches := fuzzy.Find(query, titles)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}

// TopRated returns the n highest rated movies.
func (s *ExplorerService) TopRated(n int) []models.Movie {
	ranked := engine.Match(s.cat.All(), nil)
	return engine.TopN(ranked, n)
}

// TopByDecade returns the n highest rated movies of a decade.
func (s *ExplorerService) TopByDecade(decade, n int) []models.Movie {
	ranked := engine.Match(s.cat.All(), []engine.Predicate{
		func(m models.Movie) bool { return m.Decade() == decade },
	})
	return engine.TopN(ranked, n)
}

// TopByGenre returns the n highest rated movies whose genre text contains
// the given genre, using the same case-sensitive containment as the free
// search genre filter.
func (s *ExplorerService) TopByGenre(genre string, n int) []models.Movie {
	ranked := engine.Match(s.cat.All(), engine.BuildFree(models.FreeQuery{Genres: []string{genre}}))
	return engine.TopN(ranked, n)
}

// ByDirector returns every movie credited to a director, ranked. The name
// is matched case-insensitively against the joined director names.
func (s *ExplorerService) ByDirector(name string) []models.Movie {
	lowered := strings.ToLower(name)
	return engine.Match(s.cat.All(), []engine.Predicate{
		func(m models.Movie) bool {
			return strings.Contains(strings.ToLower(m.DirectorLine()), lowered)
		},
	})
}

// RecentlyReleased returns the n most recent movies, newest first.
func (s *ExplorerService) RecentlyReleased(n int) []models.Movie {
	movies := append([]models.Movie(nil), s.cat.All()...)
	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].Year > movies[j].Year
	})
	return engine.TopN(movies, n)
}

func joinStoryTypes(types []models.StoryType) string {
	parts := make([]string, len(types))
	for i, st := range types {
		parts[i] = string(st)
	}
	return strings.Join(parts, "|")
}

// ---- Redis helpers ----

func (s *ExplorerService) getFromCache(key string) (string, error) {
	if s.redis == nil {
		return "", fmt.Errorf("redis not available")
	}
	return s.redis.Get(context.Background(), key).Result()
}

func (s *ExplorerService) setCache(key, value string, ttl time.Duration) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Set(context.Background(), key, value, ttl).Err(); err != nil {
		slog.Error("failed to set cache", "key", key, "error", err)
	}
}
