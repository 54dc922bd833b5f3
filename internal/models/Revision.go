package models

import "time"

type RevisionKind string

const (
	RevisionKindManual     RevisionKind = "revision"
	RevisionKindCompletion RevisionKind = "completion"
)

// CompletedNote marks revisions recorded as a side effect of completing a list problem.
const CompletedNote = "Completed"

type Revision struct {
	ID         string       `json:"id"`
	UserID     string       `json:"userId"`
	ProblemID  string       `json:"problemId"`
	OccurredAt time.Time    `json:"occurredAt"`
	Notes      string       `json:"notes,omitempty"`
	Kind       RevisionKind `json:"kind,omitempty"`
}
