package feeder

import (
	"fmt"
	"strings"
)

// List filters a fixed set of strings by case-insensitive substring match.
// Insertion order is preserved.
type List struct {
	items []string
	lower []string
}

// NewList creates a List feeder over items. The slice is copied.
func NewList(items []string) *List {
	l := &List{
		items: make([]string, len(items)),
		lower: make([]string, len(items)),
	}
	copy(l.items, items)
	for i, item := range items {
		l.lower[i] = strings.ToLower(item)
	}
	return l
}

// Strings is shorthand for NewList(items).
func Strings(items ...string) *List {
	return NewList(items)
}

// Stringers creates a List from any values implementing fmt.Stringer.
func Stringers[T fmt.Stringer](items []T) *List {
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.String()
	}
	return NewList(texts)
}

// Items returns a copy of the configured items.
func (l *List) Items() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// Query returns items whose lower-cased form contains the lower-cased text.
func (l *List) Query(text string, offset, count int) []string {
	if count <= 0 {
		return nil
	}
	needle := strings.ToLower(text)

	var matches []string
	for i, item := range l.lower {
		if !strings.Contains(item, needle) {
			continue
		}
		matches = append(matches, l.items[i])
		if offset >= 0 && len(matches) >= offset+count {
			break
		}
	}
	return window(matches, offset, count)
}
