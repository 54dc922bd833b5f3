package analytics

import "time"

// Result is the combined output of one aggregation pass.
type Result struct {
	MostRevised      []RevisedProblem `json:"mostRevised"`
	TotalRevisions   int              `json:"totalRevisions"`
	WeeklyActivity   []DailyBucket    `json:"weeklyActivity"`
	RecentActivity   []ActivityEvent  `json:"recentActivity"`
	AllActivityDates []time.Time      `json:"-"`
}

// Aggregate merges explicit revisions and curated-list revision counters into
// the "most revised" ranking, the revision total and the seven-day histogram.
// It performs no I/O; unresolvable titles come back as UnknownTitle.
func Aggregate(in Input) Result {
	loc := in.location()

	mostRevised := mergeByTitle(userContributions(&in), listContributions(&in), in.limit())

	total := len(in.Revisions)
	for _, doc := range in.ListProgress {
		for _, progress := range doc.ProgressByProblemID {
			if progress.RevisionCount > 0 {
				total += progress.RevisionCount
			}
		}
	}

	dates := make([]time.Time, 0, len(in.Revisions))
	for _, r := range in.Revisions {
		dates = append(dates, r.OccurredAt)
	}

	recent := in.RecentLimit
	if recent <= 0 {
		recent = DefaultMostRevisedLimit
	}

	return Result{
		MostRevised:      toRevisedProblems(mostRevised),
		TotalRevisions:   total,
		WeeklyActivity:   WeeklyActivity(in.Revisions, in.SolvedAt, in.Now, loc),
		RecentActivity:   RecentActivity(in, recent),
		AllActivityDates: dates,
	}
}
