package analytics

import "time"

const isoDateLayout = "2006-01-02"

// dayOrdinal numbers the calendar day containing t in loc, counting from
// 1970-01-01. Consecutive calendar days always differ by exactly one,
// regardless of DST transitions in loc.
func dayOrdinal(t time.Time, loc *time.Location) int64 {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// startOfDay returns midnight of the calendar day containing t in loc.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// ISODate formats the calendar day containing t in loc as YYYY-MM-DD.
func ISODate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(isoDateLayout)
}
