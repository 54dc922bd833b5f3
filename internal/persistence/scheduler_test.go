package persistence

import (
	"dsatrack/internal/models"
	"dsatrack/internal/providers"
	"dsatrack/internal/services"
	"dsatrack/internal/structures"
	"dsatrack/internal/testutil"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(filePath string) *structures.Config {
	return &structures.Config{
		Persistence: structures.Persistence{
			FilePath:     filePath,
			SaveInterval: time.Second,
		},
		Revision: structures.RevisionConfig{SweepSpec: "0 0 * * *"},
	}
}

func newTestScheduler(conf *structures.Config, store *models.DocumentStore, comp *testutil.MockCompressor) (*Scheduler, *testutil.MockMetrics, *testutil.MockLogger) {
	logger := &testutil.MockLogger{}
	metrics := testutil.NewMockMetrics()
	fm := NewFileManager(comp, store, logger)
	sweeper := services.NewRevisionSweeper(store, metrics)
	clock := providers.FixedClock{At: createdAt}
	s := NewScheduler(conf, logger, store, sweeper, fm, metrics, clock).(*Scheduler)
	return s, metrics, logger
}

func TestScheduler_PersistThenRestore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.dat")

	s, metrics, _ := newTestScheduler(testConfig(path), seededStore(), &testutil.MockCompressor{})
	require.NoError(t, s.Persist())
	assert.Equal(t, 1, metrics.PersistenceObserved)
	assert.Equal(t, 1, metrics.Documents[models.CollectionProblems])

	target := models.NewDocumentStore()
	restored, restoredMetrics, _ := newTestScheduler(testConfig(path), target, &testutil.MockCompressor{})
	require.NoError(t, restored.Restore())
	assert.Equal(t, 1, target.Counts()[models.CollectionUsers])
	assert.Equal(t, 1, restoredMetrics.Documents[models.CollectionRevisions])
}

func TestScheduler_Restore_FileNotExist(t *testing.T) {
	s, _, _ := newTestScheduler(testConfig("/nonexistent/file.dat"), models.NewDocumentStore(), &testutil.MockCompressor{})
	assert.NoError(t, s.Restore())
}

func TestScheduler_Restore_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.dat")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	s, _, _ := newTestScheduler(testConfig(path), models.NewDocumentStore(), &testutil.MockCompressor{})
	assert.Error(t, s.Restore())
}

func TestScheduler_Persist_WriteError(t *testing.T) {
	comp := &testutil.MockCompressor{
		CompressFn: func(b []byte) ([]byte, error) {
			return nil, errors.New("compress error")
		},
	}
	s, metrics, logger := newTestScheduler(testConfig(filepath.Join(t.TempDir(), "x.dat")), models.NewDocumentStore(), comp)

	assert.Error(t, s.Persist())
	assert.Equal(t, 1, logger.Count("error"))
	assert.Equal(t, 1, metrics.PersistenceObserved)
}

func TestScheduler_Sweep(t *testing.T) {
	store := models.NewDocumentStore()
	past := createdAt.Add(-time.Hour)
	store.PutProblem(&models.Problem{ID: "p1", RevisionStatus: models.RevisionScheduled, NextRevisionAt: &past})

	s, metrics, _ := newTestScheduler(testConfig(""), store, &testutil.MockCompressor{})
	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, metrics.Swept)

	p, _ := store.ProblemByID("p1")
	assert.Equal(t, models.RevisionDue, p.RevisionStatus)
}

func TestScheduler_InitRejectsBadSweepSpec(t *testing.T) {
	conf := testConfig(filepath.Join(t.TempDir(), "x.dat"))
	conf.Revision.SweepSpec = "every now and then"

	s, _, _ := newTestScheduler(conf, models.NewDocumentStore(), &testutil.MockCompressor{})
	assert.Error(t, s.Init())
	s.Stop()
}

func TestScheduler_StopNilCron(t *testing.T) {
	s, _, _ := newTestScheduler(testConfig("/tmp/test.dat"), models.NewDocumentStore(), &testutil.MockCompressor{})
	s.Stop()
}

func TestScheduler_InitAndStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifecycle.dat")

	s, _, _ := newTestScheduler(testConfig(path), seededStore(), &testutil.MockCompressor{})
	require.NoError(t, s.Init())
	time.Sleep(50 * time.Millisecond)
	s.Stop()
}
