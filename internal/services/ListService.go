package services

import (
	"dsatrack/internal/models"
	"dsatrack/internal/providers"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type ListServiceInterface interface {
	Lists() []*models.CuratedList
	List(listID string) (*models.CuratedList, error)
	PutList(list *models.CuratedList) (*models.CuratedList, error)
	Progress(userID, listID string) (*models.ListProgress, error)
	ToggleCompleted(userID, listID, problemID string) (*models.ProblemProgress, error)
	IncrementRevision(userID, listID, problemID string) (*models.ProblemProgress, error)
}

type ListService struct {
	store   *models.DocumentStore
	clock   providers.Clock
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
}

func (s *ListService) Lists() []*models.CuratedList {
	return s.store.Lists()
}

func (s *ListService) List(listID string) (*models.CuratedList, error) {
	l, ok := s.store.ListByID(listID)
	if !ok {
		return nil, ErrListNotFound
	}
	return l, nil
}

// PutList imports or replaces a curated list. Every list problem needs a
// unique id; a missing list id is generated.
func (s *ListService) PutList(list *models.CuratedList) (*models.CuratedList, error) {
	if list == nil || strings.TrimSpace(list.Title) == "" {
		return nil, fmt.Errorf("%w: list title is required", ErrValidation)
	}
	seen := make(map[string]struct{})
	for _, section := range list.Sections {
		for _, p := range section.Problems {
			if p.ID == "" || p.Title == "" {
				return nil, fmt.Errorf("%w: list problems need an id and a title", ErrValidation)
			}
			if _, dup := seen[p.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate list problem id %q", ErrValidation, p.ID)
			}
			seen[p.ID] = struct{}{}
		}
	}
	c := list.Clone()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	s.store.PutList(c)
	return c, nil
}

// Progress returns the user's progress on the list, empty when nothing was recorded yet.
func (s *ListService) Progress(userID, listID string) (*models.ListProgress, error) {
	if _, err := s.List(listID); err != nil {
		return nil, err
	}
	if p, ok := s.store.ProgressFor(userID, listID); ok {
		return p, nil
	}
	return &models.ListProgress{
		UserID:              userID,
		ListID:              listID,
		ProgressByProblemID: make(map[string]*models.ProblemProgress),
	}, nil
}

// ToggleCompleted flips the completion flag. Completing also records a
// pseudo-revision so the day counts as active.
func (s *ListService) ToggleCompleted(userID, listID, problemID string) (*models.ProblemProgress, error) {
	if err := s.check(userID, listID, problemID); err != nil {
		return nil, err
	}
	now := s.clock.Now()

	var completed bool
	doc := s.store.UpdateProgress(userID, listID, s.newProgress(userID, listID), func(p *models.ListProgress) {
		pp := entry(p, problemID)
		pp.IsCompleted = !pp.IsCompleted
		if pp.IsCompleted {
			at := now
			pp.CompletedAt = &at
		} else {
			pp.CompletedAt = nil
		}
		completed = pp.IsCompleted
		p.UpdatedAt = now
	})

	if completed {
		s.store.AddRevision(&models.Revision{
			ID:         uuid.NewString(),
			UserID:     userID,
			ProblemID:  problemID,
			OccurredAt: now,
			Notes:      models.CompletedNote,
			Kind:       models.RevisionKindCompletion,
		})
		s.metrics.IncRevisionsRecorded(string(models.RevisionKindCompletion))
	}
	s.invalidate(userID)
	return doc.ProgressByProblemID[problemID], nil
}

func (s *ListService) IncrementRevision(userID, listID, problemID string) (*models.ProblemProgress, error) {
	if err := s.check(userID, listID, problemID); err != nil {
		return nil, err
	}
	now := s.clock.Now()
	doc := s.store.UpdateProgress(userID, listID, s.newProgress(userID, listID), func(p *models.ListProgress) {
		entry(p, problemID).RevisionCount++
		p.UpdatedAt = now
	})
	s.metrics.IncRevisionsRecorded("list")
	s.invalidate(userID)
	return doc.ProgressByProblemID[problemID], nil
}

func (s *ListService) check(userID, listID, problemID string) error {
	if _, ok := s.store.UserByID(userID); !ok {
		return ErrUserNotFound
	}
	l, err := s.List(listID)
	if err != nil {
		return err
	}
	if _, _, ok := l.FindProblem(problemID); !ok {
		return ErrListProblemNotFound
	}
	return nil
}

func (s *ListService) newProgress(userID, listID string) func() *models.ListProgress {
	return func() *models.ListProgress {
		return &models.ListProgress{ID: uuid.NewString(), UserID: userID, ListID: listID}
	}
}

func entry(p *models.ListProgress, problemID string) *models.ProblemProgress {
	pp, ok := p.ProgressByProblemID[problemID]
	if !ok || pp == nil {
		pp = &models.ProblemProgress{}
		p.ProgressByProblemID[problemID] = pp
	}
	return pp
}

func (s *ListService) invalidate(userID string) {
	invalidateAnalytics(s.store, s.cache, s.clock, userID)
}

func NewListService(store *models.DocumentStore, clock providers.Clock, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) ListServiceInterface {
	return &ListService{store: store, clock: clock, cache: cache, metrics: metrics}
}
