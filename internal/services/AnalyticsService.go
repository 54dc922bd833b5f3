package services

import (
	"dsatrack/internal/analytics"
	"dsatrack/internal/models"
	"dsatrack/internal/providers"
	"dsatrack/internal/structures"
	"time"
)

// AnalyticsReport is the payload of the analytics endpoint.
type AnalyticsReport struct {
	MostRevised    []analytics.RevisedProblem `json:"mostRevised"`
	TotalRevisions int                        `json:"totalRevisions"`
	WeeklyActivity []analytics.DailyBucket    `json:"weeklyActivity"`
	RecentActivity []analytics.ActivityEvent  `json:"recentActivity"`
	CurrentStreak  int                        `json:"currentStreak"`
	LongestStreak  int                        `json:"longestStreak"`
	GeneratedAt    time.Time                  `json:"generatedAt"`
}

type AnalyticsServiceInterface interface {
	GetAnalytics(userID string) (*AnalyticsReport, error)
	CacheKey(userID string) string
}

type AnalyticsService struct {
	conf  *structures.Config
	store *models.DocumentStore
	clock providers.Clock
}

func (s *AnalyticsService) GetAnalytics(userID string) (*AnalyticsReport, error) {
	if _, ok := s.store.UserByID(userID); !ok {
		return nil, ErrUserNotFound
	}
	now := s.clock.Now()
	loc := s.clock.Location()

	result := analytics.Aggregate(s.input(userID, now, loc))
	current := analytics.CurrentStreak(result.AllActivityDates, now, loc)
	longest := analytics.LongestStreak(result.AllActivityDates, now, loc)

	user, _ := s.store.UpdateUser(userID, func(u *models.User) {
		u.CurrentStreak = current
		u.LongestStreak = max(u.LongestStreak, longest)
		u.StreakUpdatedAt = now
	})
	if user != nil {
		longest = user.LongestStreak
	}

	return &AnalyticsReport{
		MostRevised:    result.MostRevised,
		TotalRevisions: result.TotalRevisions,
		WeeklyActivity: result.WeeklyActivity,
		RecentActivity: result.RecentActivity,
		CurrentStreak:  current,
		LongestStreak:  longest,
		GeneratedAt:    now,
	}, nil
}

// CacheKey must be taken before GetAnalytics reads the store.
func (s *AnalyticsService) CacheKey(userID string) string {
	return AnalyticsCacheKey(userID, s.store.WriteVersion(userID), s.clock.Now(), s.clock.Location())
}

func (s *AnalyticsService) input(userID string, now time.Time, loc *time.Location) analytics.Input {
	revisions := s.store.RevisionsByUser(userID)
	records := make([]analytics.RevisionRecord, 0, len(revisions))
	for _, r := range revisions {
		records = append(records, analytics.RevisionRecord{
			ProblemID:  r.ProblemID,
			OccurredAt: r.OccurredAt,
			Kind:       analytics.EventKind(r.Kind),
		})
	}

	docs := s.store.ProgressByUser(userID)
	progress := make([]analytics.ListProgressRecord, 0, len(docs))
	for _, doc := range docs {
		byProblem := make(map[string]analytics.ProblemProgress, len(doc.ProgressByProblemID))
		for id, pp := range doc.ProgressByProblemID {
			byProblem[id] = analytics.ProblemProgress{IsCompleted: pp.IsCompleted, RevisionCount: pp.RevisionCount}
		}
		progress = append(progress, analytics.ListProgressRecord{ListID: doc.ListID, ProgressByProblemID: byProblem})
	}

	lists := make(map[string]*models.CuratedList)
	catalog := func(listID, problemID string) (analytics.CatalogEntry, bool) {
		l, ok := lists[listID]
		if !ok {
			if l, ok = s.store.ListByID(listID); !ok {
				return analytics.CatalogEntry{}, false
			}
			lists[listID] = l
		}
		p, section, found := l.FindProblem(problemID)
		if !found {
			return analytics.CatalogEntry{}, false
		}
		return analytics.CatalogEntry{Title: p.Title, SectionTitle: section}, true
	}

	// completion pseudo-revisions point at list problems, so fall back to
	// the catalogs the user has progress on
	titles := func(problemID string) (string, bool) {
		if p, ok := s.store.ProblemByID(problemID); ok && p.UserID == userID {
			return p.Title, true
		}
		for _, doc := range docs {
			if entry, ok := catalog(doc.ListID, problemID); ok {
				return entry.Title, true
			}
		}
		return "", false
	}

	since := time.Date(now.In(loc).Year(), now.In(loc).Month(), now.In(loc).Day()-6, 0, 0, 0, 0, loc)
	return analytics.Input{
		Revisions:    records,
		ListProgress: progress,
		Titles:       titles,
		Catalog:      catalog,
		SolvedAt:     s.store.SolvedProblemsSince(userID, since),
		Now:          now,
		Location:     loc,
		Limit:        s.conf.Analytics.MostRevisedLimit,
	}
}

func NewAnalyticsService(conf *structures.Config, store *models.DocumentStore, clock providers.Clock) AnalyticsServiceInterface {
	return &AnalyticsService{conf: conf, store: store, clock: clock}
}
