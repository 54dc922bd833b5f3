package models

import (
	"slices"
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// RevisionStatus is advanced by the daily sweep: scheduled -> due -> overdue.
type RevisionStatus string

const (
	RevisionNone      RevisionStatus = "none"
	RevisionScheduled RevisionStatus = "scheduled"
	RevisionDue       RevisionStatus = "due"
	RevisionOverdue   RevisionStatus = "overdue"
)

type Problem struct {
	ID             string         `json:"id"`
	UserID         string         `json:"userId"`
	Title          string         `json:"title"`
	Topic          string         `json:"topic,omitempty"`
	Tags           []string       `json:"tags,omitempty"`
	Patterns       []string       `json:"patterns,omitempty"`
	Difficulty     Difficulty     `json:"difficulty"`
	Link           string         `json:"link,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	Code           string         `json:"code,omitempty"`
	IsSolved       bool           `json:"isSolved"`
	RevisionStatus RevisionStatus `json:"revisionStatus"`
	NextRevisionAt *time.Time     `json:"nextRevisionAt,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// Clone returns a deep copy so store readers never alias stored slices.
func (p *Problem) Clone() *Problem {
	if p == nil {
		return nil
	}
	c := *p
	c.Tags = slices.Clone(p.Tags)
	c.Patterns = slices.Clone(p.Patterns)
	if p.NextRevisionAt != nil {
		at := *p.NextRevisionAt
		c.NextRevisionAt = &at
	}
	return &c
}
