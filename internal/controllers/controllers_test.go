package controllers

import (
	"dsatrack/internal/models"
	"dsatrack/internal/providers"
	"dsatrack/internal/services"
	"dsatrack/internal/structures"
	"dsatrack/internal/testutil"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"
)

// --- local mocks (scoped to controller tests) ---

type mockLogger struct {
	errors int
}

func (m *mockLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) { m.errors++ }
func (m *mockLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Close()                                                  {}

type mockAnalyticsService struct {
	calls   int
	version uint64
	report  *services.AnalyticsReport
	err     error
}

func (m *mockAnalyticsService) CacheKey(userID string) string {
	return services.AnalyticsCacheKey(userID, m.version, now, time.UTC)
}

func (m *mockAnalyticsService) GetAnalytics(_ string) (*services.AnalyticsReport, error) {
	m.calls++
	return m.report, m.err
}

// --- helpers ---

var now = time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

type env struct {
	store    *models.DocumentStore
	clock    providers.FixedClock
	cache    *testutil.MockCache
	metrics  *testutil.MockMetrics
	logger   *mockLogger
	problems *ProblemController
	lists    *ListController
	users    *UserController
}

func newEnv() *env {
	conf := &structures.Config{
		Analytics: structures.AnalyticsConfig{Timezone: "UTC", MostRevisedLimit: 10},
		Revision:  structures.RevisionConfig{FirstInterval: 24 * time.Hour, Interval: 72 * time.Hour},
	}
	e := &env{
		store:   models.NewDocumentStore(),
		clock:   providers.FixedClock{At: now},
		cache:   testutil.NewMockCache(),
		metrics: testutil.NewMockMetrics(),
		logger:  &mockLogger{},
	}
	e.problems = NewProblemController(e.logger, services.NewProblemService(conf, e.store, e.clock, e.cache, e.metrics))
	e.lists = NewListController(e.logger, services.NewListService(e.store, e.clock, e.cache, e.metrics))
	e.users = NewUserController(e.logger, services.NewUserService(e.store, e.clock))
	e.store.PutUser(&models.User{ID: "u1", Name: "Ada"})
	return e
}

func request(method, target, userID, body string, pathValues ...string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if userID != "" {
		req.Header.Set(UserIDHeader, userID)
	}
	for i := 0; i+1 < len(pathValues); i += 2 {
		req.SetPathValue(pathValues[i], pathValues[i+1])
	}
	return req
}
