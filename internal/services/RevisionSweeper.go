package services

import (
	"dsatrack/internal/models"
	"dsatrack/internal/providers"
	"time"
)

const overdueAfter = 24 * time.Hour

type RevisionSweeperInterface interface {
	Sweep(now time.Time) int
}

type RevisionSweeper struct {
	store   *models.DocumentStore
	metrics providers.MetricsProviderInterface
}

// Sweep advances revision statuses: scheduled problems whose revision time has
// passed become due, and due problems a day past it become overdue.
func (s *RevisionSweeper) Sweep(now time.Time) int {
	flipped := s.store.UpdateProblems(func(p *models.Problem) bool {
		if p.NextRevisionAt == nil {
			return false
		}
		next := *p.NextRevisionAt
		switch p.RevisionStatus {
		case models.RevisionScheduled:
			if next.After(now) {
				return false
			}
			p.RevisionStatus = models.RevisionDue
			if !next.After(now.Add(-overdueAfter)) {
				p.RevisionStatus = models.RevisionOverdue
			}
		case models.RevisionDue:
			if next.After(now.Add(-overdueAfter)) {
				return false
			}
			p.RevisionStatus = models.RevisionOverdue
		default:
			return false
		}
		p.UpdatedAt = now
		return true
	})
	s.metrics.AddSweptProblems(flipped)
	return flipped
}

func NewRevisionSweeper(store *models.DocumentStore, metrics providers.MetricsProviderInterface) RevisionSweeperInterface {
	return &RevisionSweeper{store: store, metrics: metrics}
}
