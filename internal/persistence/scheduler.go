package persistence

import (
	"dsatrack/internal/models"
	"dsatrack/internal/persistence/interfaces"
	"dsatrack/internal/providers"
	"dsatrack/internal/services"
	"dsatrack/internal/structures"
	"fmt"
	"sync"
	"time"

	rcron "github.com/robfig/cron/v3"
)

const stopTimeout = 10 * time.Second

type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	store       *models.DocumentStore
	sweeper     services.RevisionSweeperInterface
	fileManager *FileManager
	metrics     providers.MetricsProviderInterface
	clock       providers.Clock
	cron        *rcron.Cron
	opsMu       sync.Mutex
}

// Init schedules the periodic snapshot and the revision sweep and starts the cron.
func (s *Scheduler) Init() error {
	s.cron = rcron.New(rcron.WithLocation(s.clock.Location()))

	s.cron.Schedule(rcron.Every(s.config.Persistence.SaveInterval), rcron.FuncJob(func() {
		if err := s.Persist(); err == nil {
			s.logger.Infof(providers.TypeApp, "Persisted data to file %s", s.config.Persistence.FilePath)
		}
	}))

	_, err := s.cron.AddFunc(s.config.Revision.SweepSpec, func() {
		s.Sweep()
	})
	if err != nil {
		s.cron = nil
		return fmt.Errorf("invalid revision sweep spec %q: %w", s.config.Revision.SweepSpec, err)
	}

	s.cron.Start()
	return nil
}

// Stop halts the cron and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	select {
	case <-s.cron.Stop().Done():
	case <-time.After(stopTimeout):
		s.logger.Warnf(providers.TypeApp, "Scheduler jobs still running after %s", stopTimeout)
	}
}

func (s *Scheduler) Restore() error {
	err := s.fileManager.LoadFromFile(s.config.Persistence.FilePath)
	if err != nil {
		return err
	}
	s.reportDocuments()
	return nil
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	start := time.Now()
	err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
	s.metrics.ObservePersistenceDuration(time.Since(start))
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	s.reportDocuments()
	return nil
}

// Sweep advances revision statuses against the current time.
func (s *Scheduler) Sweep() int {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Sweeping revision schedule...")
	flipped := s.sweeper.Sweep(s.clock.Now())
	s.logger.Infof(providers.TypeApp, "Revision sweep updated %d problems", flipped)
	return flipped
}

func (s *Scheduler) reportDocuments() {
	for collection, count := range s.store.Counts() {
		s.metrics.SetDocumentsTotal(collection, count)
	}
}

func NewScheduler(config *structures.Config, logger providers.Logger, store *models.DocumentStore, sweeper services.RevisionSweeperInterface, fileManager *FileManager, metrics providers.MetricsProviderInterface, clock providers.Clock) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		store:       store,
		sweeper:     sweeper,
		fileManager: fileManager,
		metrics:     metrics,
		clock:       clock,
	}
}
