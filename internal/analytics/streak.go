package analytics

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// activeDays collapses timestamps into the set of calendar days on which
// something happened. Days before the epoch or after today are dropped.
func activeDays(dates []time.Time, now time.Time, loc *time.Location) *roaring.Bitmap {
	if loc == nil {
		loc = time.UTC
	}
	today := dayOrdinal(now, loc)
	days := roaring.New()
	for _, t := range dates {
		if t.IsZero() {
			continue
		}
		d := dayOrdinal(t, loc)
		if d < 0 || d > today {
			continue
		}
		days.Add(uint32(d))
	}
	return days
}

// CurrentStreak counts consecutive active days ending today or yesterday.
// Activity yesterday keeps the streak alive until today ends.
func CurrentStreak(dates []time.Time, now time.Time, loc *time.Location) int {
	if len(dates) == 0 {
		return 0
	}
	if loc == nil {
		loc = time.UTC
	}
	days := activeDays(dates, now, loc)
	if days.IsEmpty() {
		return 0
	}

	today := uint32(dayOrdinal(now, loc))
	it := days.ReverseIterator()
	latest := it.Next()
	if latest != today && latest+1 != today {
		return 0
	}

	streak := 1
	prev := latest
	for it.HasNext() {
		d := it.Next()
		if prev-d != 1 {
			break
		}
		streak++
		prev = d
	}
	return streak
}

// LongestStreak returns the longest run of consecutive active days anywhere in dates.
func LongestStreak(dates []time.Time, now time.Time, loc *time.Location) int {
	days := activeDays(dates, now, loc)
	longest, run := 0, 0
	var prev uint32
	it := days.Iterator()
	for it.HasNext() {
		d := it.Next()
		if run > 0 && d-prev == 1 {
			run++
		} else {
			run = 1
		}
		prev = d
		longest = max(longest, run)
	}
	return longest
}
