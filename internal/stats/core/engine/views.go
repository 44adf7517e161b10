package engine

import (
	"math"
	"sort"
	"strings"

	"problem-tracker-service/internal/stats/core/domain"
)

// TopTags returns tags by count desc, ties broken by case-insensitive name.
// n <= 0 returns every tag.
func TopTags(stats domain.AggregateStats, n int) []domain.TagCount {
	tags := make([]domain.TagCount, 0, len(stats.ByTag))
	for name, count := range stats.ByTag {
		tags = append(tags, domain.TagCount{Name: name, Count: count})
	}

	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		li, lj := strings.ToLower(tags[i].Name), strings.ToLower(tags[j].Name)
		if li != lj {
			return li < lj
		}
		return tags[i].Name < tags[j].Name
	})

	if n > 0 && len(tags) > n {
		tags = tags[:n]
	}
	return tags
}

// Share returns count as a percentage of total, rounded to one decimal.
func Share(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	pct := float64(count) / float64(total) * 100
	return math.Round(pct*10) / 10
}

// Tie is the leader value when no configured author is strictly ahead.
const Tie = "Tie"

// Leader returns whichever of authors has the most records. Equal top counts,
// including no records at all, yield Tie. It returns "" when authors is empty.
func Leader(stats domain.AggregateStats, authors []string) string {
	if len(authors) == 0 {
		return ""
	}

	leader, best, tied := "", -1, false
	for _, name := range authors {
		n := stats.ByAuthor[name]
		switch {
		case n > best:
			leader, best, tied = name, n, false
		case n == best:
			tied = true
		}
	}

	if tied {
		return Tie
	}
	return leader
}
