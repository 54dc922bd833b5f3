package services

import (
	"dsatrack/internal/models"
	"dsatrack/internal/providers"
	"dsatrack/internal/structures"
	"dsatrack/internal/testutil"
	"time"
)

var now = time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

type fixture struct {
	conf    *structures.Config
	store   *models.DocumentStore
	clock   providers.FixedClock
	cache   *testutil.MockCache
	metrics *testutil.MockMetrics
}

func newFixture() *fixture {
	return &fixture{
		conf: &structures.Config{
			Analytics: structures.AnalyticsConfig{Timezone: "UTC", MostRevisedLimit: 10},
			Revision:  structures.RevisionConfig{FirstInterval: 24 * time.Hour, Interval: 72 * time.Hour},
		},
		store:   models.NewDocumentStore(),
		clock:   providers.FixedClock{At: now},
		cache:   testutil.NewMockCache(),
		metrics: testutil.NewMockMetrics(),
	}
}

func (f *fixture) user(id string) {
	f.store.PutUser(&models.User{ID: id, Name: id, CreatedAt: now})
}

func (f *fixture) problems() *ProblemService {
	return NewProblemService(f.conf, f.store, f.clock, f.cache, f.metrics).(*ProblemService)
}

func (f *fixture) lists() *ListService {
	return NewListService(f.store, f.clock, f.cache, f.metrics).(*ListService)
}

func (f *fixture) analytics() *AnalyticsService {
	return NewAnalyticsService(f.conf, f.store, f.clock).(*AnalyticsService)
}

// cacheKey is the key a user's first write invalidates.
func (f *fixture) cacheKey(userID string) string {
	return AnalyticsCacheKey(userID, 0, now, time.UTC)
}
