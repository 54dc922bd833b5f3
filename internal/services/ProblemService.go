package services

import (
	"dsatrack/internal/models"
	"dsatrack/internal/patterns"
	"dsatrack/internal/providers"
	"dsatrack/internal/structures"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ProblemInput struct {
	Title      string   `json:"title" validate:"required|maxLen:300"`
	Topic      string   `json:"topic"`
	Tags       []string `json:"tags"`
	Patterns   []string `json:"patterns"`
	Difficulty string   `json:"difficulty" validate:"required|in:easy,medium,hard"`
	Link       string   `json:"link" validate:"url"`
	Notes      string   `json:"notes"`
	Code       string   `json:"code"`
	IsSolved   bool     `json:"isSolved"`
}

// ProblemFilter narrows List. Zero fields match everything.
type ProblemFilter struct {
	Pattern    string
	Topic      string
	Difficulty models.Difficulty
	Solved     *bool
}

func (f ProblemFilter) matches(p *models.Problem) bool {
	if f.Pattern != "" && !slices.ContainsFunc(p.Patterns, func(name string) bool {
		return strings.EqualFold(name, f.Pattern)
	}) {
		return false
	}
	if f.Topic != "" && !strings.EqualFold(p.Topic, f.Topic) {
		return false
	}
	if f.Difficulty != "" && p.Difficulty != f.Difficulty {
		return false
	}
	if f.Solved != nil && p.IsSolved != *f.Solved {
		return false
	}
	return true
}

type ProblemServiceInterface interface {
	Create(userID string, in ProblemInput) (*models.Problem, error)
	Update(userID, problemID string, in ProblemInput) (*models.Problem, error)
	Delete(userID, problemID string) error
	Get(userID, problemID string) (*models.Problem, error)
	List(userID string, filter ProblemFilter) []*models.Problem
	MarkSolved(userID, problemID string) (*models.Problem, error)
	Revise(userID, problemID, notes string) (*models.Problem, error)
	AutoTagAll(userID string) (int, error)
	SuggestPatterns(text patterns.ProblemText) []string
}

type ProblemService struct {
	conf    *structures.Config
	store   *models.DocumentStore
	clock   providers.Clock
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
	tagger  *patterns.Tagger
}

func (s *ProblemService) Create(userID string, in ProblemInput) (*models.Problem, error) {
	if _, ok := s.store.UserByID(userID); !ok {
		return nil, ErrUserNotFound
	}
	in = normalizeProblemInput(in)
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	p := &models.Problem{
		ID:             uuid.NewString(),
		UserID:         userID,
		RevisionStatus: models.RevisionNone,
		CreatedAt:      now,
	}
	s.apply(p, in)
	if p.IsSolved {
		s.schedule(p, s.conf.Revision.FirstInterval)
	}
	p.UpdatedAt = now

	s.store.PutProblem(p)
	s.invalidate(userID)
	return p, nil
}

func (s *ProblemService) Update(userID, problemID string, in ProblemInput) (*models.Problem, error) {
	p, err := s.Get(userID, problemID)
	if err != nil {
		return nil, err
	}
	in = normalizeProblemInput(in)
	if err = validateInput(&in); err != nil {
		return nil, err
	}

	wasSolved := p.IsSolved
	s.apply(p, in)
	if p.IsSolved && !wasSolved {
		s.schedule(p, s.conf.Revision.FirstInterval)
	}
	if !p.IsSolved {
		p.RevisionStatus = models.RevisionNone
		p.NextRevisionAt = nil
	}
	p.UpdatedAt = s.clock.Now()

	s.store.PutProblem(p)
	s.invalidate(userID)
	return p, nil
}

// apply copies the editable fields and auto-tags when no patterns were supplied.
func (s *ProblemService) apply(p *models.Problem, in ProblemInput) {
	p.Title = in.Title
	p.Topic = in.Topic
	p.Tags = in.Tags
	p.Difficulty = models.Difficulty(in.Difficulty)
	p.Link = in.Link
	p.Notes = in.Notes
	p.Code = in.Code
	p.IsSolved = in.IsSolved

	p.Patterns = in.Patterns
	if len(p.Patterns) == 0 {
		p.Patterns = s.tagger.Match(problemText(p))
	}
}

func (s *ProblemService) schedule(p *models.Problem, interval time.Duration) {
	next := s.clock.Now().Add(interval)
	p.NextRevisionAt = &next
	p.RevisionStatus = models.RevisionScheduled
}

func (s *ProblemService) Delete(userID, problemID string) error {
	if _, err := s.Get(userID, problemID); err != nil {
		return err
	}
	s.store.DeleteProblem(problemID)
	s.invalidate(userID)
	return nil
}

func (s *ProblemService) Get(userID, problemID string) (*models.Problem, error) {
	p, ok := s.store.ProblemByID(problemID)
	if !ok || p.UserID != userID {
		return nil, ErrProblemNotFound
	}
	return p, nil
}

func (s *ProblemService) List(userID string, filter ProblemFilter) []*models.Problem {
	all := s.store.ProblemsByUser(userID)
	out := make([]*models.Problem, 0, len(all))
	for _, p := range all {
		if filter.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *ProblemService) MarkSolved(userID, problemID string) (*models.Problem, error) {
	p, err := s.Get(userID, problemID)
	if err != nil {
		return nil, err
	}
	p.IsSolved = true
	s.schedule(p, s.conf.Revision.FirstInterval)
	p.UpdatedAt = s.clock.Now()

	s.store.PutProblem(p)
	s.invalidate(userID)
	return p, nil
}

// Revise records a revision of the problem and pushes its next revision out.
func (s *ProblemService) Revise(userID, problemID, notes string) (*models.Problem, error) {
	p, err := s.Get(userID, problemID)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	s.store.AddRevision(&models.Revision{
		ID:         uuid.NewString(),
		UserID:     userID,
		ProblemID:  problemID,
		OccurredAt: now,
		Notes:      strings.TrimSpace(notes),
		Kind:       models.RevisionKindManual,
	})
	s.metrics.IncRevisionsRecorded(string(models.RevisionKindManual))

	s.schedule(p, s.conf.Revision.Interval)
	p.UpdatedAt = now
	s.store.PutProblem(p)
	s.invalidate(userID)
	return p, nil
}

// AutoTagAll recomputes patterns for every problem of the user. Non-empty
// results overwrite the stored patterns; the number of problems with at least
// one pattern is returned.
func (s *ProblemService) AutoTagAll(userID string) (int, error) {
	if _, ok := s.store.UserByID(userID); !ok {
		return 0, ErrUserNotFound
	}
	tagged := 0
	now := s.clock.Now()
	for _, p := range s.store.ProblemsByUser(userID) {
		matched := s.tagger.Match(problemText(p))
		if len(matched) == 0 {
			continue
		}
		p.Patterns = matched
		p.UpdatedAt = now
		s.store.PutProblem(p)
		tagged++
	}
	if tagged > 0 {
		s.invalidate(userID)
	}
	return tagged, nil
}

func (s *ProblemService) SuggestPatterns(text patterns.ProblemText) []string {
	return s.tagger.Match(text)
}

func (s *ProblemService) invalidate(userID string) {
	invalidateAnalytics(s.store, s.cache, s.clock, userID)
}

func problemText(p *models.Problem) patterns.ProblemText {
	return patterns.ProblemText{Title: p.Title, Topic: p.Topic, Tags: p.Tags}
}

func normalizeProblemInput(in ProblemInput) ProblemInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Topic = strings.TrimSpace(in.Topic)
	in.Difficulty = strings.ToLower(strings.TrimSpace(in.Difficulty))
	in.Link = strings.TrimSpace(in.Link)
	in.Tags = compact(in.Tags)
	in.Patterns = compact(in.Patterns)
	return in
}

// compact trims entries and drops blanks and duplicates, keeping first-seen order.
func compact(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func NewProblemService(conf *structures.Config, store *models.DocumentStore, clock providers.Clock, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) ProblemServiceInterface {
	return &ProblemService{
		conf:    conf,
		store:   store,
		clock:   clock,
		cache:   cache,
		metrics: metrics,
		tagger:  patterns.Default(),
	}
}

