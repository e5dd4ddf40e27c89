// Package feeder provides candidate sources for autocomplete widgets.
//
// A Feeder answers "given partial text, an offset and a maximum count, which
// candidates match?". Queries run synchronously on the UI goroutine, so every
// implementation keeps its work bounded and never fails: missing paths and
// malformed patterns produce an empty result, and per-candidate I/O errors
// are logged and skipped.
//
// Implementations:
//   - List: case-insensitive substring filter over fixed strings
//   - Fuzzy: fuzzy-ranked filter over fixed strings
//   - Dir: glob expansion relative to a base directory
//   - Walk: recursive directory walk with substring filter
//
// Feeders are read-only after construction and may be shared between widgets.
package feeder
