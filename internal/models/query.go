package models

import "fmt"

// Mood is a qualitative preference the quiz maps onto genre tags.
type Mood string

const (
	MoodExcited    Mood = "excited"
	MoodThoughtful Mood = "thoughtful"
	MoodRelaxed    Mood = "relaxed"
	MoodTense      Mood = "tense"
	MoodRomantic   Mood = "romantic"
)

// StoryType is a coarse story category the quiz maps onto genre tags.
type StoryType string

const (
	StoryAction     StoryType = "action"
	StoryMystery    StoryType = "mystery"
	StoryRomance    StoryType = "romance"
	StoryComedy     StoryType = "comedy"
	StorySciFi      StoryType = "scifi"
	StoryHistorical StoryType = "historical"
	StoryThriller   StoryType = "thriller"
	StoryWar        StoryType = "war"
	StoryBiography  StoryType = "biography"
)

// DurationBucket is a coarse runtime range.
type DurationBucket string

const (
	DurationAny      DurationBucket = "any"
	DurationShort    DurationBucket = "<2h"
	DurationStandard DurationBucket = "2-3h"
	DurationEpic     DurationBucket = ">3h"
)

// EraBucket is a coarse release-period range.
type EraBucket string

const (
	EraAny     EraBucket = "any"
	EraClassic EraBucket = "classic" // before 1980
	EraGolden  EraBucket = "golden"  // 1980-1999
	EraModern  EraBucket = "modern"  // 2000-2009
	EraRecent  EraBucket = "recent"  // 2010 and later
)

// maxStoryTypes caps the quiz story-type multi-select.
const maxStoryTypes = 3

// Valid enum values for quiz answers.
var (
	ValidMoods = map[Mood]bool{
		MoodExcited: true, MoodThoughtful: true, MoodRelaxed: true,
		MoodTense: true, MoodRomantic: true,
	}
	ValidStoryTypes = map[StoryType]bool{
		StoryAction: true, StoryMystery: true, StoryRomance: true,
		StoryComedy: true, StorySciFi: true, StoryHistorical: true,
		StoryThriller: true, StoryWar: true, StoryBiography: true,
	}
	ValidDurations = map[DurationBucket]bool{
		DurationAny: true, DurationShort: true, DurationStandard: true, DurationEpic: true,
	}
	ValidEras = map[EraBucket]bool{
		EraAny: true, EraClassic: true, EraGolden: true, EraModern: true, EraRecent: true,
	}
)

// PreferenceQuery holds one set of quiz answers. It is built per request
// and discarded after producing a result set.
type PreferenceQuery struct {
	Mood       Mood           `json:"mood"`
	StoryTypes []StoryType    `json:"story_types"`
	Duration   DurationBucket `json:"duration"`
	Era        EraBucket      `json:"era"`
	MinRating  float64        `json:"min_rating"`
	// Director is an exact or partial director name; empty or "any"
	// means no constraint.
	Director string `json:"director"`
	// Actor is a partial star name; empty means no constraint.
	Actor string `json:"actor"`
}

// Normalize deduplicates story types, caps them at three and defaults the
// bucket fields to "any" when unset.
func (q *PreferenceQuery) Normalize() {
	seen := make(map[StoryType]bool, len(q.StoryTypes))
	deduped := q.StoryTypes[:0]
	for _, st := range q.StoryTypes {
		if st == "" || seen[st] {
			continue
		}
		seen[st] = true
		deduped = append(deduped, st)
		if len(deduped) == maxStoryTypes {
			break
		}
	}
	q.StoryTypes = deduped

	if q.Duration == "" {
		q.Duration = DurationAny
	}
	if q.Era == "" {
		q.Era = EraAny
	}
}

// Validate checks every enum answer. An empty mood is allowed and means no
// mood constraint.
func (q PreferenceQuery) Validate() error {
	if q.Mood != "" && !ValidMoods[q.Mood] {
		return fmt.Errorf("unknown mood %q", q.Mood)
	}
	for _, st := range q.StoryTypes {
		if st != "" && !ValidStoryTypes[st] {
			return fmt.Errorf("unknown story type %q", st)
		}
	}
	if q.Duration != "" && !ValidDurations[q.Duration] {
		return fmt.Errorf("unknown duration bucket %q", q.Duration)
	}
	if q.Era != "" && !ValidEras[q.Era] {
		return fmt.Errorf("unknown era bucket %q", q.Era)
	}
	return nil
}

// FreeQuery holds one ad hoc browse/search request.
type FreeQuery struct {
	// Genres is a match-any genre selection; empty means no constraint.
	Genres []string `json:"genres"`
	// YearFrom/YearTo are inclusive bounds; zero means unbounded.
	YearFrom  int     `json:"year_from"`
	YearTo    int     `json:"year_to"`
	MinRating float64 `json:"min_rating"`
	// Search is matched case-insensitively against title, directors and
	// stars; empty means no constraint.
	Search string `json:"search"`
}

// RecommendationResponse wraps a preference-match result set.
type RecommendationResponse struct {
	TotalMatches int     `json:"total_matches"`
	Movies       []Movie `json:"movies"`
	GeneratedAt  string  `json:"generated_at"`
}

// SearchResponse wraps a free-query result set.
type SearchResponse struct {
	TotalMatches int     `json:"total_matches"`
	Movies       []Movie `json:"movies"`
}
