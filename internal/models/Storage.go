package models

// SnapshotVersion is written into every persisted snapshot.
const SnapshotVersion = 1

// Snapshot is the on-disk envelope for the whole document store.
type Snapshot struct {
	Version   int                      `json:"version"`
	Users     map[string]*User         `json:"users"`
	Problems  map[string]*Problem      `json:"problems"`
	Revisions []*Revision              `json:"revisions"`
	Lists     map[string]*CuratedList  `json:"lists"`
	Progress  map[string]*ListProgress `json:"progress"`
}

// Collection names reported by DocumentStore.Counts.
const (
	CollectionUsers     = "users"
	CollectionProblems  = "problems"
	CollectionRevisions = "revisions"
	CollectionLists     = "lists"
	CollectionProgress  = "progress"
)
