package engine

import (
	"sort"
	"time"

	"problem-tracker-service/internal/stats/core/domain"
)

// ComputeStreak counts consecutive calendar days with at least one record,
// ending today or yesterday. Calendar days are taken in today's location.
// Several records on the same day count as one day of activity.
func ComputeStreak(records []domain.ActivityRecord, today time.Time) int {
	if len(records) == 0 {
		return 0
	}

	loc := today.Location()

	seen := make(map[civilDay]struct{}, len(records))
	days := make([]civilDay, 0, len(records))
	for _, r := range records {
		d := dayOf(r.CreatedAt, loc)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i] > days[j]
	})

	// No activity today or yesterday: the streak is gone.
	if dayOf(today, loc)-days[0] > 1 {
		return 0
	}

	streak := 0
	for i := 0; i < len(days)-1; i++ {
		if days[i]-days[i+1] != 1 {
			break
		}
		streak++
	}

	return streak + 1
}
