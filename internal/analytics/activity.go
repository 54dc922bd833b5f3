package analytics

import (
	"sort"
	"time"
)

// UnknownTitle is reported for problems whose title can no longer be resolved.
const UnknownTitle = "Unknown"

const DefaultMostRevisedLimit = 10

// revision-sourced entries are truncated before merging with list entries
const userRevisionLimit = 5

type EventKind string

const (
	EventRevision   EventKind = "revision"
	EventCompletion EventKind = "completion"
)

// RevisionRecord is one explicit "mark revised" action.
type RevisionRecord struct {
	ProblemID  string
	OccurredAt time.Time
	Kind       EventKind
}

type ProblemProgress struct {
	IsCompleted   bool
	RevisionCount int
}

// ListProgressRecord holds one user's counters against a curated list.
type ListProgressRecord struct {
	ListID              string
	ProgressByProblemID map[string]ProblemProgress
}

type CatalogEntry struct {
	Title        string
	SectionTitle string
}

// TitleResolver maps a user problem id to its display title.
type TitleResolver func(problemID string) (string, bool)

// CatalogResolver maps a curated list problem to its title and containing section.
type CatalogResolver func(listID, problemID string) (CatalogEntry, bool)

// ActivityEvent is a read-only projection of a revision record.
type ActivityEvent struct {
	SourceID   string    `json:"sourceId"`
	Title      string    `json:"title"`
	OccurredAt time.Time `json:"occurredAt"`
	Kind       EventKind `json:"kind"`
}

// Input is everything Aggregate needs, already loaded by the caller.
type Input struct {
	Revisions    []RevisionRecord
	ListProgress []ListProgressRecord
	Titles       TitleResolver
	Catalog      CatalogResolver
	SolvedAt     []time.Time
	Now          time.Time
	Location     *time.Location
	Limit        int
	RecentLimit  int
}

func (in *Input) location() *time.Location {
	if in.Location == nil {
		return time.UTC
	}
	return in.Location
}

func (in *Input) limit() int {
	if in.Limit <= 0 {
		return DefaultMostRevisedLimit
	}
	return in.Limit
}

func (in *Input) title(problemID string) string {
	if in.Titles == nil {
		return UnknownTitle
	}
	if title, ok := in.Titles(problemID); ok && title != "" {
		return title
	}
	return UnknownTitle
}

func (in *Input) catalogEntry(listID, problemID string) CatalogEntry {
	if in.Catalog == nil {
		return CatalogEntry{Title: UnknownTitle}
	}
	entry, ok := in.Catalog(listID, problemID)
	if !ok || entry.Title == "" {
		entry.Title = UnknownTitle
	}
	return entry
}

// RecentActivity projects revisions into a newest-first activity log capped at limit.
// A non-positive limit returns the full log.
func RecentActivity(in Input, limit int) []ActivityEvent {
	records := make([]RevisionRecord, len(in.Revisions))
	copy(records, in.Revisions)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].OccurredAt.After(records[j].OccurredAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	events := make([]ActivityEvent, 0, len(records))
	for _, r := range records {
		kind := r.Kind
		if kind == "" {
			kind = EventRevision
		}
		events = append(events, ActivityEvent{
			SourceID:   r.ProblemID,
			Title:      in.title(r.ProblemID),
			OccurredAt: r.OccurredAt,
			Kind:       kind,
		})
	}
	return events
}
