package service

import (
	"encoding/json"
	"log/slog"
	"sort"

	"movie-explorer-service/internal/analytics"
	"movie-explorer-service/internal/models"
)

// minDirectorMovies is the smallest filmography counted toward the
// top-rated directors view.
const minDirectorMovies = 2

// OverviewResponse is the home-view payload: headline metrics plus the
// featured movie lists.
type OverviewResponse struct {
	analytics.Overview
	TopRated         []models.Movie `json:"top_rated"`
	RecentlyReleased []models.Movie `json:"recently_released"`
}

// DirectorStatsResponse pairs the busiest directors with the best rated
// ones (minimum two movies).
type DirectorStatsResponse struct {
	MostMovies []analytics.CountEntry   `json:"most_movies"`
	TopRated   []analytics.AverageEntry `json:"top_rated"`
}

// Overview returns the headline catalog metrics and featured lists.
func (s *ExplorerService) Overview() *OverviewResponse {
	cacheKey := "analytics:overview"
	if cached, err := s.getFromCache(cacheKey); err == nil {
		var resp OverviewResponse
		if json.Unmarshal([]byte(cached), &resp) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return &resp
		}
	}

	resp := &OverviewResponse{
		Overview:         analytics.ComputeOverview(s.cat.All()),
		TopRated:         s.TopRated(5),
		RecentlyReleased: s.RecentlyReleased(5),
	}

	if data, err := json.Marshal(resp); err == nil {
		s.setCache(cacheKey, string(data), analyticsCacheTTL)
	}
	return resp
}

// GenreCounts returns genre frequencies, most common first.
func (s *ExplorerService) GenreCounts() []analytics.CountEntry {
	cacheKey := "analytics:genres"
	if cached, err := s.getFromCache(cacheKey); err == nil {
		var entries []analytics.CountEntry
		if json.Unmarshal([]byte(cached), &entries) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return entries
		}
	}

	entries := analytics.SortedCounts(analytics.CountsByField(s.cat.All(), "genres"))

	if data, err := json.Marshal(entries); err == nil {
		s.setCache(cacheKey, string(data), analyticsCacheTTL)
	}
	return entries
}

// GenreComboCounts returns the most common exact genre combinations.
func (s *ExplorerService) GenreComboCounts(limit int) []analytics.CountEntry {
	entries := analytics.SortedCounts(analytics.GroupCount(s.cat.All(), analytics.GenreComboKey))
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// DirectorStats returns the directors with the most movies and the best
// average ratings (minimum two movies).
func (s *ExplorerService) DirectorStats() *DirectorStatsResponse {
	cacheKey := "analytics:directors"
	if cached, err := s.getFromCache(cacheKey); err == nil {
		var resp DirectorStatsResponse
		if json.Unmarshal([]byte(cached), &resp) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return &resp
		}
	}

	items := s.cat.All()
	resp := &DirectorStatsResponse{
		MostMovies: analytics.SortedCounts(analytics.CountsByField(items, "directors")),
		TopRated: analytics.SortedAverages(
			analytics.AverageRatingByGroup(items, analytics.DirectorKey, minDirectorMovies)),
	}

	if data, err := json.Marshal(resp); err == nil {
		s.setCache(cacheKey, string(data), analyticsCacheTTL)
	}
	return resp
}

// DecadeCounts returns movie counts per decade in chronological order,
// alongside the average rating of each decade.
func (s *ExplorerService) DecadeCounts() []DecadeEntry {
	items := s.cat.All()
	counts := analytics.GroupCount(items, analytics.DecadeKey)
	averages := analytics.AverageRatingByGroup(items, analytics.DecadeKey, 1)

	entries := make([]DecadeEntry, 0, len(counts))
	for decade, count := range counts {
		entries = append(entries, DecadeEntry{
			Decade:    decade,
			Count:     count,
			AvgRating: averages[decade],
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Decade < entries[j].Decade })
	return entries
}

// DecadeEntry is one decade's movie count and mean rating.
type DecadeEntry struct {
	Decade    string  `json:"decade"`
	Count     int     `json:"count"`
	AvgRating float64 `json:"avg_rating"`
}

// YearCounts returns movie counts per release year in chronological order.
func (s *ExplorerService) YearCounts() []analytics.CountEntry {
	counts := analytics.GroupCount(s.cat.All(), analytics.YearKey)
	entries := make([]analytics.CountEntry, 0, len(counts))
	for year, count := range counts {
		entries = append(entries, analytics.CountEntry{Key: year, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// RatingStats summarizes the catalog's rating distribution.
func (s *ExplorerService) RatingStats() analytics.RatingStats {
	return analytics.ComputeRatingStats(s.cat.All())
}
