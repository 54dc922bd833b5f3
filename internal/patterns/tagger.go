package patterns

import (
	"strings"
	"sync"
)

// ProblemText is the free text a problem is tagged from.
type ProblemText struct {
	Title string   `json:"title"`
	Topic string   `json:"topic,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

type Tagger struct {
	defs []PatternDefinition
}

// NewTagger lower-cases the table once so matching never allocates per pattern.
func NewTagger(defs []PatternDefinition) *Tagger {
	lowered := make([]PatternDefinition, 0, len(defs))
	for _, d := range defs {
		l := PatternDefinition{
			Name:     d.Name,
			Keywords: make([]string, 0, len(d.Keywords)),
			Topics:   make([]string, 0, len(d.Topics)),
		}
		for _, k := range d.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				l.Keywords = append(l.Keywords, k)
			}
		}
		for _, t := range d.Topics {
			if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
				l.Topics = append(l.Topics, t)
			}
		}
		lowered = append(lowered, l)
	}
	return &Tagger{defs: lowered}
}

var defaultTagger = sync.OnceValue(func() *Tagger {
	return NewTagger(definitions)
})

// Default returns the process-wide tagger over the built-in table.
func Default() *Tagger {
	return defaultTagger()
}

// Match returns the names of every pattern whose topic or keyword criteria
// fire for p, in table order. A topic hit skips the keyword check.
func (t *Tagger) Match(p ProblemText) []string {
	topic := strings.ToLower(strings.TrimSpace(p.Topic))
	search := strings.ToLower(p.Title + " " + p.Topic + " " + strings.Join(p.Tags, " "))

	matched := make([]string, 0)
	seen := make(map[string]struct{})
	for _, d := range t.defs {
		if _, dup := seen[d.Name]; dup {
			continue
		}
		if matchesTopic(topic, d.Topics) || containsAny(search, d.Keywords) {
			matched = append(matched, d.Name)
			seen[d.Name] = struct{}{}
		}
	}
	return matched
}

func matchesTopic(topic string, topics []string) bool {
	if topic == "" {
		return false
	}
	for _, t := range topics {
		if strings.Contains(topic, t) || strings.Contains(t, topic) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
