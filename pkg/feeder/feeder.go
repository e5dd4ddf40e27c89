package feeder

// Feeder produces completion candidates for partial input.
//
// Implementations must return at most count items, must return nothing when
// count <= 0, and must be deterministic for a given data or filesystem state.
// Offset skips that many matches before taking count; implementations that
// cannot paginate document that they ignore it.
type Feeder interface {
	Query(text string, offset, count int) []string
}

// Func adapts an ordinary function to the Feeder interface.
type Func func(text string, offset, count int) []string

// Query calls f and enforces the count bound.
func (f Func) Query(text string, offset, count int) []string {
	if count <= 0 {
		return nil
	}
	return window(f(text, offset, count), 0, count)
}

// window applies skip-then-take to a slice of matches.
func window(items []string, offset, count int) []string {
	if count <= 0 {
		return nil
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if len(items) > count {
		items = items[:count]
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
