package analytics

import (
	"slices"
	"sort"
)

type ContributionKind string

const (
	UserRevision ContributionKind = "user-revision"
	ListRevision ContributionKind = "list-revision"
)

// Contribution is the uniform shape both revision sources are reduced to
// before ranking and merging.
type Contribution struct {
	Kind         ContributionKind
	ProblemKey   string
	Title        string
	SectionTitle string
	Count        int
}

// RevisedProblem is one row of the "most revised" ranking.
type RevisedProblem struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	RevisionCount int              `json:"revisionCount"`
	SectionTitle  string           `json:"sectionTitle,omitempty"`
	Source        ContributionKind `json:"source"`
}

// rank orders contributions by count, highest first, keeping first-seen
// order among equal counts, and truncates to limit.
func rank(contributions []Contribution, limit int) []Contribution {
	sort.SliceStable(contributions, func(i, j int) bool {
		return contributions[i].Count > contributions[j].Count
	})
	if limit >= 0 && len(contributions) > limit {
		contributions = contributions[:limit]
	}
	return contributions
}

// userContributions counts revisions per problem id.
func userContributions(in *Input) []Contribution {
	index := make(map[string]int)
	contributions := make([]Contribution, 0)
	for _, r := range in.Revisions {
		if i, ok := index[r.ProblemID]; ok {
			contributions[i].Count++
			continue
		}
		index[r.ProblemID] = len(contributions)
		contributions = append(contributions, Contribution{
			Kind:       UserRevision,
			ProblemKey: r.ProblemID,
			Count:      1,
		})
	}

	contributions = rank(contributions, userRevisionLimit)
	for i := range contributions {
		contributions[i].Title = in.title(contributions[i].ProblemKey)
	}
	return contributions
}

// listContributions collects every list problem with a positive revision
// counter. Progress maps are walked in key order so output is repeatable.
func listContributions(in *Input) []Contribution {
	index := make(map[string]int)
	contributions := make([]Contribution, 0)
	for _, doc := range in.ListProgress {
		keys := make([]string, 0, len(doc.ProgressByProblemID))
		for k := range doc.ProgressByProblemID {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		for _, problemID := range keys {
			progress := doc.ProgressByProblemID[problemID]
			if progress.RevisionCount <= 0 {
				continue
			}
			if i, ok := index[problemID]; ok {
				contributions[i].Count += progress.RevisionCount
				continue
			}
			entry := in.catalogEntry(doc.ListID, problemID)
			index[problemID] = len(contributions)
			contributions = append(contributions, Contribution{
				Kind:         ListRevision,
				ProblemKey:   problemID,
				Title:        entry.Title,
				SectionTitle: entry.SectionTitle,
				Count:        progress.RevisionCount,
			})
		}
	}
	return rank(contributions, in.limit())
}

// mergeByTitle appends list entries whose title is not already present.
// The two sources use unrelated id spaces, so the title is the only shared key.
func mergeByTitle(primary, secondary []Contribution, limit int) []Contribution {
	merged := make([]Contribution, 0, len(primary)+len(secondary))
	seen := make(map[string]struct{}, len(primary)+len(secondary))
	for _, c := range primary {
		merged = append(merged, c)
		seen[c.Title] = struct{}{}
	}
	for _, c := range secondary {
		if _, ok := seen[c.Title]; ok {
			continue
		}
		merged = append(merged, c)
		seen[c.Title] = struct{}{}
	}
	return rank(merged, limit)
}

func toRevisedProblems(contributions []Contribution) []RevisedProblem {
	out := make([]RevisedProblem, 0, len(contributions))
	for _, c := range contributions {
		out = append(out, RevisedProblem{
			ID:            c.ProblemKey,
			Title:         c.Title,
			RevisionCount: c.Count,
			SectionTitle:  c.SectionTitle,
			Source:        c.Kind,
		})
	}
	return out
}
