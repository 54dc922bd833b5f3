package models

import (
	"slices"
	"time"
)

type ListProblem struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Link       string     `json:"link,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
}

type ListSection struct {
	Title    string        `json:"title"`
	Problems []ListProblem `json:"problems"`
}

// CuratedList is a shared study sheet. User state lives in ListProgress.
type CuratedList struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Sections    []ListSection `json:"sections"`
}

// FindProblem returns the list problem with the given id and the title of its section.
func (l *CuratedList) FindProblem(problemID string) (ListProblem, string, bool) {
	for _, s := range l.Sections {
		for _, p := range s.Problems {
			if p.ID == problemID {
				return p, s.Title, true
			}
		}
	}
	return ListProblem{}, "", false
}

func (l *CuratedList) Clone() *CuratedList {
	if l == nil {
		return nil
	}
	c := *l
	c.Sections = make([]ListSection, len(l.Sections))
	for i, s := range l.Sections {
		c.Sections[i] = ListSection{Title: s.Title, Problems: slices.Clone(s.Problems)}
	}
	return &c
}

type ProblemProgress struct {
	IsCompleted   bool       `json:"isCompleted"`
	RevisionCount int        `json:"revisionCount"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// ListProgress is one user's progress against one curated list.
type ListProgress struct {
	ID                  string                      `json:"id"`
	UserID              string                      `json:"userId"`
	ListID              string                      `json:"listId"`
	ProgressByProblemID map[string]*ProblemProgress `json:"progressByProblemId"`
	UpdatedAt           time.Time                   `json:"updatedAt"`
}

func (lp *ListProgress) Clone() *ListProgress {
	if lp == nil {
		return nil
	}
	c := *lp
	c.ProgressByProblemID = make(map[string]*ProblemProgress, len(lp.ProgressByProblemID))
	for k, v := range lp.ProgressByProblemID {
		if v == nil {
			continue
		}
		pp := *v
		if v.CompletedAt != nil {
			at := *v.CompletedAt
			pp.CompletedAt = &at
		}
		c.ProgressByProblemID[k] = &pp
	}
	return &c
}
