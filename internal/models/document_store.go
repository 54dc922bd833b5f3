package models

import (
	"slices"
	"sort"
	"sync"
	"time"
)

// DocumentStore keeps every collection in memory behind one RWMutex.
// All reads hand out copies; all writes store copies.
type DocumentStore struct {
	mu        sync.RWMutex
	users     map[string]*User
	problems  map[string]*Problem
	revisions map[string][]Revision
	lists     map[string]*CuratedList
	progress  map[string]*ListProgress
	versions  map[string]uint64
}

func NewDocumentStore() *DocumentStore {
	s := &DocumentStore{versions: make(map[string]uint64)}
	s.reset()
	return s
}

// WriteVersion counts the analytics-relevant writes recorded for a user.
// It is never reset, including by Restore.
func (s *DocumentStore) WriteVersion(userID string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.versions[userID]
}

// BumpWriteVersion records a write for the user and returns the new version.
func (s *DocumentStore) BumpWriteVersion(userID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.versions[userID]++
	return s.versions[userID]
}

func (s *DocumentStore) reset() {
	s.users = make(map[string]*User)
	s.problems = make(map[string]*Problem)
	s.revisions = make(map[string][]Revision)
	s.lists = make(map[string]*CuratedList)
	s.progress = make(map[string]*ListProgress)
}

func progressKey(userID, listID string) string {
	return userID + "/" + listID
}

func (s *DocumentStore) PutUser(u *User) {
	if u == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *u
	s.users[u.ID] = &c
}

func (s *DocumentStore) UserByID(id string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	c := *u
	return &c, true
}

// UpdateUser applies fn to the stored user under the write lock.
func (s *DocumentStore) UpdateUser(id string, fn func(u *User)) (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	fn(u)
	c := *u
	return &c, true
}

func (s *DocumentStore) PutProblem(p *Problem) {
	if p == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.problems[p.ID] = p.Clone()
}

func (s *DocumentStore) ProblemByID(id string) (*Problem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.problems[id]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

func (s *DocumentStore) DeleteProblem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.problems[id]; !ok {
		return false
	}
	delete(s.problems, id)
	return true
}

// ProblemsByUser returns the user's problems ordered by creation time.
func (s *DocumentStore) ProblemsByUser(userID string) []*Problem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Problem, 0)
	for _, p := range s.problems {
		if p.UserID == userID {
			out = append(out, p.Clone())
		}
	}
	sortProblems(out)
	return out
}

// SolvedProblemsSince returns creation times of the user's solved problems created at or after since.
func (s *DocumentStore) SolvedProblemsSince(userID string, since time.Time) []time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]time.Time, 0)
	for _, p := range s.problems {
		if p.UserID == userID && p.IsSolved && !p.CreatedAt.Before(since) {
			out = append(out, p.CreatedAt)
		}
	}
	slices.SortFunc(out, func(a, b time.Time) int { return a.Compare(b) })
	return out
}

// UpdateProblems calls fn for every stored problem under the write lock.
// fn reports whether it changed the problem; the number of changes is returned.
func (s *DocumentStore) UpdateProblems(fn func(p *Problem) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := 0
	for _, p := range s.problems {
		if fn(p) {
			changed++
		}
	}
	return changed
}

func sortProblems(ps []*Problem) {
	sort.Slice(ps, func(i, j int) bool {
		if !ps[i].CreatedAt.Equal(ps[j].CreatedAt) {
			return ps[i].CreatedAt.Before(ps[j].CreatedAt)
		}
		return ps[i].ID < ps[j].ID
	})
}

func (s *DocumentStore) AddRevision(r *Revision) {
	if r == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revisions[r.UserID] = append(s.revisions[r.UserID], *r)
}

// RevisionsByUser returns the user's revisions in insertion order.
func (s *DocumentStore) RevisionsByUser(userID string) []*Revision {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.revisions[userID]
	out := make([]*Revision, len(stored))
	for i := range stored {
		r := stored[i]
		out[i] = &r
	}
	return out
}

func (s *DocumentStore) PutList(l *CuratedList) {
	if l == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[l.ID] = l.Clone()
}

func (s *DocumentStore) ListByID(id string) (*CuratedList, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.lists[id]
	if !ok {
		return nil, false
	}
	return l.Clone(), true
}

// Lists returns every curated list ordered by title.
func (s *DocumentStore) Lists() []*CuratedList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*CuratedList, 0, len(s.lists))
	for _, l := range s.lists {
		out = append(out, l.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *DocumentStore) ProgressFor(userID, listID string) (*ListProgress, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.progress[progressKey(userID, listID)]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

// ProgressByUser returns every list progress document of the user ordered by list id.
func (s *DocumentStore) ProgressByUser(userID string) []*ListProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*ListProgress, 0)
	for _, p := range s.progress {
		if p.UserID == userID {
			out = append(out, p.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ListID < out[j].ListID })
	return out
}

// UpdateProgress creates or mutates the (user, list) progress document under
// the write lock, so concurrent increments for the same user never lose writes.
// init is called only when no document exists yet.
func (s *DocumentStore) UpdateProgress(userID, listID string, init func() *ListProgress, fn func(p *ListProgress)) *ListProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := progressKey(userID, listID)
	p, ok := s.progress[key]
	if !ok {
		p = init()
		if p.ProgressByProblemID == nil {
			p.ProgressByProblemID = make(map[string]*ProblemProgress)
		}
		s.progress[key] = p
	}
	fn(p)
	return p.Clone()
}

func (s *DocumentStore) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	revisions := 0
	for _, rs := range s.revisions {
		revisions += len(rs)
	}
	return map[string]int{
		CollectionUsers:     len(s.users),
		CollectionProblems:  len(s.problems),
		CollectionRevisions: revisions,
		CollectionLists:     len(s.lists),
		CollectionProgress:  len(s.progress),
	}
}

// Snapshot copies the full store into a persistence envelope.
func (s *DocumentStore) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := &Snapshot{
		Version:   SnapshotVersion,
		Users:     make(map[string]*User, len(s.users)),
		Problems:  make(map[string]*Problem, len(s.problems)),
		Revisions: make([]*Revision, 0),
		Lists:     make(map[string]*CuratedList, len(s.lists)),
		Progress:  make(map[string]*ListProgress, len(s.progress)),
	}
	for id, u := range s.users {
		c := *u
		snap.Users[id] = &c
	}
	for id, p := range s.problems {
		snap.Problems[id] = p.Clone()
	}
	userIDs := make([]string, 0, len(s.revisions))
	for id := range s.revisions {
		userIDs = append(userIDs, id)
	}
	slices.Sort(userIDs)
	for _, id := range userIDs {
		for i := range s.revisions[id] {
			r := s.revisions[id][i]
			snap.Revisions = append(snap.Revisions, &r)
		}
	}
	for id, l := range s.lists {
		snap.Lists[id] = l.Clone()
	}
	for key, p := range s.progress {
		snap.Progress[key] = p.Clone()
	}
	return snap
}

// Restore replaces the store contents with snap. A nil snapshot empties the store.
func (s *DocumentStore) Restore(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	if snap == nil {
		return
	}
	for _, u := range snap.Users {
		if u != nil {
			c := *u
			s.users[u.ID] = &c
		}
	}
	for _, p := range snap.Problems {
		if p != nil {
			s.problems[p.ID] = p.Clone()
		}
	}
	for _, r := range snap.Revisions {
		if r != nil {
			s.revisions[r.UserID] = append(s.revisions[r.UserID], *r)
		}
	}
	for _, l := range snap.Lists {
		if l != nil {
			s.lists[l.ID] = l.Clone()
		}
	}
	for _, p := range snap.Progress {
		if p != nil {
			s.progress[progressKey(p.UserID, p.ListID)] = p.Clone()
		}
	}
}
