package domain

import "time"

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Difficulties lists the closed difficulty set in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// ActivityRecord is the read-only view of one logged problem the engine works on.
type ActivityRecord struct {
	ID         string
	CreatedAt  time.Time
	Author     string
	Difficulty Difficulty
	Tags       []string
}

type AggregateStats struct {
	Total        int
	ByAuthor     map[string]int
	ByDifficulty map[Difficulty]int // always holds exactly Easy, Medium, Hard
	ByTag        map[string]int
	Streak       int
	SolvedToday  int
}

type TagCount struct {
	Name  string
	Count int
}

// Snapshot is one computed view of the whole store, published on every change.
type Snapshot struct {
	Stats       AggregateStats
	TopTags     []TagCount
	Leader      string // configured author with the most records, or Tie
	GeneratedAt time.Time
}
