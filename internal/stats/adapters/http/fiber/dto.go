package fiber

import (
	"time"

	"problem-tracker-service/internal/stats/core/domain"
	"problem-tracker-service/internal/stats/core/engine"
)

type TagCountResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StatsResponse represents the aggregate statistics payload
// @Description Aggregate statistics over every logged problem
type StatsResponse struct {
	Total             int                `json:"total"`
	ByAuthor          map[string]int     `json:"by_author"`
	ByAuthorShare     map[string]float64 `json:"by_author_share"`
	Leader            string             `json:"leader" example:"Tie"`
	ByDifficulty      map[string]int     `json:"by_difficulty"`
	ByDifficultyShare map[string]float64 `json:"by_difficulty_share"`
	ByTag             map[string]int     `json:"by_tag"`
	TopTags           []TagCountResponse `json:"top_tags"`
	UniqueTags        int                `json:"unique_tags"`
	Streak            int                `json:"streak"`
	SolvedToday       int                `json:"solved_today"`
	GeneratedAt       time.Time          `json:"generated_at"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"internal_server_error"`
	Message string `json:"message,omitempty" example:"stats unavailable"`
}

// NewStatsResponse maps a snapshot to its wire shape. It is shared with the
// live feed so both surfaces publish identical payloads.
func NewStatsResponse(s *domain.Snapshot) StatsResponse {
	resp := StatsResponse{
		Total:             s.Stats.Total,
		ByAuthor:          s.Stats.ByAuthor,
		ByAuthorShare:     make(map[string]float64, len(s.Stats.ByAuthor)),
		Leader:            s.Leader,
		ByDifficulty:      make(map[string]int, len(s.Stats.ByDifficulty)),
		ByDifficultyShare: make(map[string]float64, len(s.Stats.ByDifficulty)),
		ByTag:             s.Stats.ByTag,
		TopTags:           make([]TagCountResponse, 0, len(s.TopTags)),
		UniqueTags:        len(s.Stats.ByTag),
		Streak:            s.Stats.Streak,
		SolvedToday:       s.Stats.SolvedToday,
		GeneratedAt:       s.GeneratedAt,
	}

	for name, n := range s.Stats.ByAuthor {
		resp.ByAuthorShare[name] = engine.Share(n, s.Stats.Total)
	}

	for d, n := range s.Stats.ByDifficulty {
		resp.ByDifficulty[string(d)] = n
		resp.ByDifficultyShare[string(d)] = engine.Share(n, s.Stats.Total)
	}

	for _, tc := range s.TopTags {
		resp.TopTags = append(resp.TopTags, TagCountResponse{Name: tc.Name, Count: tc.Count})
	}

	return resp
}
