package feeder

import (
	"github.com/sahilm/fuzzy"
)

// Fuzzy ranks a fixed set of strings with fuzzy matching, best match first.
// Empty text returns the items in their original order.
type Fuzzy struct {
	items []string
}

// NewFuzzy creates a Fuzzy feeder over items. The slice is copied.
func NewFuzzy(items ...string) *Fuzzy {
	f := &Fuzzy{items: make([]string, len(items))}
	copy(f.items, items)
	return f
}

// Query returns the items matching text, ordered by score.
func (f *Fuzzy) Query(text string, offset, count int) []string {
	if count <= 0 {
		return nil
	}
	if text == "" {
		return window(f.items, offset, count)
	}

	matches := fuzzy.Find(text, f.items)
	ranked := make([]string, len(matches))
	for i, m := range matches {
		ranked[i] = m.Str
	}
	return window(ranked, offset, count)
}
