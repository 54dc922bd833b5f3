package testutil

import (
	"dsatrack/internal/providers"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.Logs {
		if l.Level == level {
			n++
		}
	}
	return n
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu      sync.Mutex
	Data    map[string][]byte
	Deleted []string
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
	m.Deleted = append(m.Deleted, key)
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu                  sync.Mutex
	Requests            int
	CacheHits           int
	CacheMisses         int
	CacheInvalidations  int
	PersistenceObserved int
	Documents           map[string]int
	Revisions           map[string]int
	Swept               int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{Documents: make(map[string]int), Revisions: make(map[string]int)}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) IncCacheInvalidations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheInvalidations++
}

func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistenceObserved++
}

func (m *MockMetrics) SetDocumentsTotal(collection string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Documents[collection] = count
}

func (m *MockMetrics) IncRevisionsRecorded(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Revisions[source]++
}

func (m *MockMetrics) AddSweptProblems(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Swept += count
}

// MockCompressor implements the persistence compressor with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}
