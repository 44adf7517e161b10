package domain

import (
	"strings"
	"time"
)

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// ParseDifficulty accepts any casing of Easy, Medium or Hard.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	}
	return "", false
}

// Rank orders difficulties Easy < Medium < Hard. Unknown values rank 0.
func (d Difficulty) Rank() int {
	switch d {
	case Easy:
		return 1
	case Medium:
		return 2
	case Hard:
		return 3
	}
	return 0
}

type Problem struct {
	ID         string
	Title      string
	Link       string
	Difficulty Difficulty
	Tags       []string
	SolvedBy   string
	Notes      string
	CreatedAt  time.Time
	Comments   []Comment
}

type Comment struct {
	User      string
	Text      string
	CreatedAt time.Time
}

// HasTag reports whether tag is one of p's tags (exact match).
func (p Problem) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
