package fiber

import (
	"fmt"
	"time"

	"problem-tracker-service/internal/problems/core/domain"
)

// CreateProblemRequest represents the create problem payload
// @Description Problem payload
type CreateProblemRequest struct {
	Title      string   `json:"title" example:"Two Sum"`
	Link       string   `json:"link" example:"https://leetcode.com/problems/two-sum/"`
	Difficulty string   `json:"difficulty" example:"Easy"`
	Tags       []string `json:"tags" example:"Array,Hash Table"`
	SolvedBy   string   `json:"solved_by" example:"Gaurav"`
	Notes      string   `json:"notes" example:"one-pass hash map"`
}

type AddCommentRequest struct {
	User string `json:"user" example:"Gaurav"`
	Text string `json:"text" example:"try the two-pointer version too"`
}

type LeetCodeRequest struct {
	URL string `json:"url" example:"https://leetcode.com/problems/two-sum/"`
}

type CommentResponse struct {
	User      string    `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type ProblemResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Link         string            `json:"link"`
	Difficulty   string            `json:"difficulty"`
	Tags         []string          `json:"tags"`
	SolvedBy     string            `json:"solved_by"`
	Notes        string            `json:"notes"`
	CreatedAt    time.Time         `json:"created_at"`
	RelativeDate string            `json:"relative_date" example:"Yesterday"`
	Comments     []CommentResponse `json:"comments"`
}

type ListProblemsResponse struct {
	Count    int               `json:"count"`
	Problems []ProblemResponse `json:"problems"`
}

type LeetCodeResponse struct {
	Title      string   `json:"title" example:"Two Sum"`
	Difficulty string   `json:"difficulty" example:"Easy"`
	Tags       []string `json:"tags"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_problem"`
	Message string `json:"message,omitempty" example:"title and solved_by are required"`
}

func newCommentResponse(c domain.Comment) CommentResponse {
	return CommentResponse{User: c.User, Text: c.Text, CreatedAt: c.CreatedAt}
}

// relativeDate renders at relative to now by calendar day in now's location:
// Today, Yesterday, "N days ago" within a week, otherwise "Jan 2, 2006".
func relativeDate(at, now time.Time) string {
	at = at.In(now.Location())
	day := func(t time.Time) int64 {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix() / 86400
	}

	diff := day(now) - day(at)
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff == 0:
		return "Today"
	case diff == 1:
		return "Yesterday"
	case diff < 7:
		return fmt.Sprintf("%d days ago", diff)
	}
	return at.Format("Jan 2, 2006")
}

func newProblemResponse(p domain.Problem, now time.Time) ProblemResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	comments := make([]CommentResponse, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, newCommentResponse(c))
	}
	return ProblemResponse{
		ID:           p.ID,
		Title:        p.Title,
		Link:         p.Link,
		Difficulty:   string(p.Difficulty),
		Tags:         tags,
		SolvedBy:     p.SolvedBy,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
		RelativeDate: relativeDate(p.CreatedAt, now),
		Comments:     comments,
	}
}
