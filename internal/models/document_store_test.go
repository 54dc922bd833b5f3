package models

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func TestDocumentStore_UserRoundTrip(t *testing.T) {
	s := NewDocumentStore()
	s.PutUser(&User{ID: "u1", Name: "Ada", CreatedAt: base})

	u, ok := s.UserByID("u1")
	require.True(t, ok)
	assert.Equal(t, "Ada", u.Name)

	_, ok = s.UserByID("missing")
	assert.False(t, ok)
}

func TestDocumentStore_UpdateUser(t *testing.T) {
	s := NewDocumentStore()
	s.PutUser(&User{ID: "u1"})

	u, ok := s.UpdateUser("u1", func(u *User) { u.CurrentStreak = 4 })
	require.True(t, ok)
	assert.Equal(t, 4, u.CurrentStreak)

	stored, _ := s.UserByID("u1")
	assert.Equal(t, 4, stored.CurrentStreak)

	_, ok = s.UpdateUser("nobody", func(*User) {})
	assert.False(t, ok)
}

func TestDocumentStore_ProblemReturnsCopy(t *testing.T) {
	s := NewDocumentStore()
	s.PutProblem(&Problem{ID: "p1", UserID: "u1", Title: "Two Sum", Tags: []string{"array"}})

	p, ok := s.ProblemByID("p1")
	require.True(t, ok)
	p.Title = "changed"
	p.Tags[0] = "changed"

	original, _ := s.ProblemByID("p1")
	assert.Equal(t, "Two Sum", original.Title)
	assert.Equal(t, []string{"array"}, original.Tags)
}

func TestDocumentStore_ProblemsByUserOrdered(t *testing.T) {
	s := NewDocumentStore()
	s.PutProblem(&Problem{ID: "b", UserID: "u1", CreatedAt: base.Add(time.Hour)})
	s.PutProblem(&Problem{ID: "a", UserID: "u1", CreatedAt: base.Add(2 * time.Hour)})
	s.PutProblem(&Problem{ID: "c", UserID: "u1", CreatedAt: base})
	s.PutProblem(&Problem{ID: "x", UserID: "u2", CreatedAt: base})

	ps := s.ProblemsByUser("u1")
	require.Len(t, ps, 3)
	assert.Equal(t, "c", ps[0].ID)
	assert.Equal(t, "b", ps[1].ID)
	assert.Equal(t, "a", ps[2].ID)

	assert.Empty(t, s.ProblemsByUser("nobody"))
	assert.NotNil(t, s.ProblemsByUser("nobody"))
}

func TestDocumentStore_DeleteProblem(t *testing.T) {
	s := NewDocumentStore()
	s.PutProblem(&Problem{ID: "p1", UserID: "u1"})

	assert.True(t, s.DeleteProblem("p1"))
	assert.False(t, s.DeleteProblem("p1"))
	_, ok := s.ProblemByID("p1")
	assert.False(t, ok)
}

func TestDocumentStore_SolvedProblemsSince(t *testing.T) {
	s := NewDocumentStore()
	s.PutProblem(&Problem{ID: "old", UserID: "u1", IsSolved: true, CreatedAt: base.Add(-10 * 24 * time.Hour)})
	s.PutProblem(&Problem{ID: "new", UserID: "u1", IsSolved: true, CreatedAt: base})
	s.PutProblem(&Problem{ID: "unsolved", UserID: "u1", CreatedAt: base})
	s.PutProblem(&Problem{ID: "other", UserID: "u2", IsSolved: true, CreatedAt: base})

	got := s.SolvedProblemsSince("u1", base.Add(-7*24*time.Hour))
	require.Len(t, got, 1)
	assert.True(t, got[0].Equal(base))
}

func TestDocumentStore_UpdateProblems(t *testing.T) {
	s := NewDocumentStore()
	s.PutProblem(&Problem{ID: "p1", RevisionStatus: RevisionScheduled})
	s.PutProblem(&Problem{ID: "p2", RevisionStatus: RevisionNone})

	changed := s.UpdateProblems(func(p *Problem) bool {
		if p.RevisionStatus != RevisionScheduled {
			return false
		}
		p.RevisionStatus = RevisionDue
		return true
	})
	assert.Equal(t, 1, changed)

	p1, _ := s.ProblemByID("p1")
	assert.Equal(t, RevisionDue, p1.RevisionStatus)
}

func TestDocumentStore_RevisionsInsertionOrder(t *testing.T) {
	s := NewDocumentStore()
	s.AddRevision(&Revision{ID: "r1", UserID: "u1", ProblemID: "p1", OccurredAt: base})
	s.AddRevision(&Revision{ID: "r2", UserID: "u1", ProblemID: "p2", OccurredAt: base.Add(-time.Hour)})
	s.AddRevision(&Revision{ID: "r3", UserID: "u2", ProblemID: "p1", OccurredAt: base})

	rs := s.RevisionsByUser("u1")
	require.Len(t, rs, 2)
	assert.Equal(t, "r1", rs[0].ID)
	assert.Equal(t, "r2", rs[1].ID)

	rs[0].ProblemID = "mutated"
	again := s.RevisionsByUser("u1")
	assert.Equal(t, "p1", again[0].ProblemID)
}

func TestDocumentStore_ListsSortedByTitle(t *testing.T) {
	s := NewDocumentStore()
	s.PutList(&CuratedList{ID: "l2", Title: "Striver"})
	s.PutList(&CuratedList{ID: "l1", Title: "Blind 75", Sections: []ListSection{
		{Title: "Arrays", Problems: []ListProblem{{ID: "lp1", Title: "Two Sum"}}},
	}})

	ls := s.Lists()
	require.Len(t, ls, 2)
	assert.Equal(t, "l1", ls[0].ID)

	l, ok := s.ListByID("l1")
	require.True(t, ok)
	p, section, found := l.FindProblem("lp1")
	require.True(t, found)
	assert.Equal(t, "Two Sum", p.Title)
	assert.Equal(t, "Arrays", section)

	l.Sections[0].Problems[0].Title = "mutated"
	again, _ := s.ListByID("l1")
	assert.Equal(t, "Two Sum", again.Sections[0].Problems[0].Title)
}

func TestDocumentStore_UpdateProgressCreatesOnce(t *testing.T) {
	s := NewDocumentStore()
	inits := 0
	init := func() *ListProgress {
		inits++
		return &ListProgress{ID: "lp", UserID: "u1", ListID: "l1"}
	}
	bump := func(p *ListProgress) {
		pp, ok := p.ProgressByProblemID["x"]
		if !ok {
			pp = &ProblemProgress{}
			p.ProgressByProblemID["x"] = pp
		}
		pp.RevisionCount++
	}

	s.UpdateProgress("u1", "l1", init, bump)
	got := s.UpdateProgress("u1", "l1", init, bump)

	assert.Equal(t, 1, inits)
	assert.Equal(t, 2, got.ProgressByProblemID["x"].RevisionCount)

	stored, ok := s.ProgressFor("u1", "l1")
	require.True(t, ok)
	assert.Equal(t, 2, stored.ProgressByProblemID["x"].RevisionCount)
	assert.Len(t, s.ProgressByUser("u1"), 1)
	assert.Empty(t, s.ProgressByUser("u2"))
}

func TestDocumentStore_ConcurrentProgressUpdates(t *testing.T) {
	s := NewDocumentStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.UpdateProgress("u1", "l1",
				func() *ListProgress { return &ListProgress{UserID: "u1", ListID: "l1"} },
				func(p *ListProgress) {
					pp, ok := p.ProgressByProblemID["x"]
					if !ok {
						pp = &ProblemProgress{}
						p.ProgressByProblemID["x"] = pp
					}
					pp.RevisionCount++
				})
		}()
	}
	wg.Wait()

	p, ok := s.ProgressFor("u1", "l1")
	require.True(t, ok)
	assert.Equal(t, 50, p.ProgressByProblemID["x"].RevisionCount)
}

func TestDocumentStore_Counts(t *testing.T) {
	s := NewDocumentStore()
	s.PutUser(&User{ID: "u1"})
	s.PutProblem(&Problem{ID: "p1"})
	s.AddRevision(&Revision{ID: "r1", UserID: "u1"})
	s.AddRevision(&Revision{ID: "r2", UserID: "u2"})

	c := s.Counts()
	assert.Equal(t, 1, c[CollectionUsers])
	assert.Equal(t, 1, c[CollectionProblems])
	assert.Equal(t, 2, c[CollectionRevisions])
	assert.Equal(t, 0, c[CollectionLists])
	assert.Equal(t, 0, c[CollectionProgress])
}

func TestDocumentStore_SnapshotRestore(t *testing.T) {
	s := NewDocumentStore()
	for i := 0; i < 3; i++ {
		s.PutProblem(&Problem{ID: fmt.Sprintf("p%d", i), UserID: "u1", CreatedAt: base})
	}
	s.PutUser(&User{ID: "u1"})
	s.AddRevision(&Revision{ID: "r1", UserID: "u1", ProblemID: "p0", OccurredAt: base})
	s.PutList(&CuratedList{ID: "l1", Title: "Blind 75"})
	s.UpdateProgress("u1", "l1",
		func() *ListProgress { return &ListProgress{ID: "lp1", UserID: "u1", ListID: "l1"} },
		func(p *ListProgress) { p.ProgressByProblemID["a"] = &ProblemProgress{IsCompleted: true} })

	snap := s.Snapshot()
	assert.Equal(t, SnapshotVersion, snap.Version)
	assert.Len(t, snap.Problems, 3)
	assert.Len(t, snap.Revisions, 1)

	restored := NewDocumentStore()
	restored.Restore(snap)
	assert.Equal(t, s.Counts(), restored.Counts())

	p, ok := restored.ProgressFor("u1", "l1")
	require.True(t, ok)
	assert.True(t, p.ProgressByProblemID["a"].IsCompleted)

	restored.Restore(nil)
	assert.Equal(t, 0, restored.Counts()[CollectionProblems])
}

func TestDocumentStore_WriteVersion(t *testing.T) {
	s := NewDocumentStore()
	assert.Equal(t, uint64(0), s.WriteVersion("u1"))

	assert.Equal(t, uint64(1), s.BumpWriteVersion("u1"))
	assert.Equal(t, uint64(2), s.BumpWriteVersion("u1"))
	assert.Equal(t, uint64(0), s.WriteVersion("u2"))

	s.Restore(&Snapshot{Version: SnapshotVersion})
	assert.Equal(t, uint64(2), s.WriteVersion("u1"))
}
