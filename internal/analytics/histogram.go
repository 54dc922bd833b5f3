package analytics

import "time"

const weekDays = 7

// DailyBucket counts solved and revised problems for one calendar day.
type DailyBucket struct {
	DayLabel     string `json:"dayLabel"`
	ISODate      string `json:"isoDate"`
	SolvedCount  int    `json:"solvedCount"`
	RevisedCount int    `json:"revisedCount"`
}

// WeeklyActivity builds seven buckets for [today-6, today], oldest first.
// Timestamps outside the window are ignored.
func WeeklyActivity(revisions []RevisionRecord, solvedAt []time.Time, now time.Time, loc *time.Location) []DailyBucket {
	if loc == nil {
		loc = time.UTC
	}
	today := startOfDay(now, loc)
	weekStart := today.AddDate(0, 0, -(weekDays - 1))

	buckets := make([]DailyBucket, weekDays)
	index := make(map[string]int, weekDays)
	for i := 0; i < weekDays; i++ {
		day := weekStart.AddDate(0, 0, i)
		iso := day.Format(isoDateLayout)
		buckets[i] = DailyBucket{
			DayLabel: day.Weekday().String()[:3],
			ISODate:  iso,
		}
		index[iso] = i
	}

	for _, r := range revisions {
		if i, ok := index[ISODate(r.OccurredAt, loc)]; ok {
			buckets[i].RevisedCount++
		}
	}
	for _, t := range solvedAt {
		if t.Before(weekStart) {
			continue
		}
		if i, ok := index[ISODate(t, loc)]; ok {
			buckets[i].SolvedCount++
		}
	}

	return buckets
}
