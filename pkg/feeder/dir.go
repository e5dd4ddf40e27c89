package feeder

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mitchellh/go-homedir"

	"github.com/muurk/fui/internal/logging"
)

const dirSource = "feeder.dir"

// Dir completes filesystem paths by glob expansion.
//
// Typed text is expanded ("~" becomes the home directory), turned into a
// glob with AddGlob and matched with doublestar, so "**" crosses directory
// levels. Every typed segment matches case-insensitively unless the text
// holds an upper-case letter. Relative text is resolved against the base directory.
type Dir struct {
	opts options
}

// NewDir creates a glob feeder rooted at the current directory unless In is
// given.
func NewDir(opts ...Option) *Dir {
	return &Dir{opts: buildOptions(opts)}
}

// CurrentDir creates a glob feeder rooted at the working directory.
func CurrentDir(opts ...Option) *Dir {
	return NewDir(opts...)
}

// HomeDir creates a glob feeder rooted at the user's home directory.
// If the home directory cannot be determined the working directory is used.
func HomeDir(opts ...Option) *Dir {
	d := NewDir(opts...)
	home, err := homedir.Dir()
	if err != nil {
		logging.LogSkippedCandidate(dirSource, "~", err)
		return d
	}
	d.opts.base = home
	return d
}

// Base returns the directory relative text is resolved against.
func (d *Dir) Base() string {
	return d.opts.base
}

// Query expands text into matching paths, sorted, skipping offset matches
// and returning at most count.
func (d *Dir) Query(text string, offset, count int) []string {
	if count <= 0 {
		return nil
	}
	if offset < 0 {
		offset = 0
	}

	pattern, ok := d.pattern(text)
	if !ok {
		return nil
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		logging.LogSkippedCandidate(dirSource, pattern, err)
		return nil
	}
	sort.Strings(matches)

	_, typed := splitLast(text)
	dropHidden := d.opts.noHidden && !strings.HasPrefix(typed, ".")

	found := make([]string, 0, offset+count)
	for _, match := range matches {
		if dropHidden && isHidden(filepath.Base(match)) {
			continue
		}
		candidate, ok := d.inspect(match)
		if !ok {
			continue
		}
		found = append(found, candidate)
		if len(found) >= offset+count {
			break
		}
	}

	result := window(found, offset, count)
	logging.LogQuery(dirSource, text, offset, count, len(result))
	return result
}

// pattern builds the glob for text. It reports false when the text cannot
// be expanded (for example "~otheruser").
func (d *Dir) pattern(text string) (string, bool) {
	expanded, err := homedir.Expand(text)
	if err != nil {
		logging.LogSkippedCandidate(dirSource, text, err)
		return "", false
	}
	// Expand cleans "~/" down to the bare home path.
	if strings.HasSuffix(text, "/") && !strings.HasSuffix(expanded, "/") {
		expanded += "/"
	}

	pattern := AddGlob(expanded)
	if !hasUpper(text) {
		pattern = foldTyped(text, expanded, pattern)
	}
	if !filepath.IsAbs(expanded) && d.opts.base != "." {
		pattern = filepath.Join(d.opts.base, pattern)
	}
	return pattern, true
}

// foldTyped folds the part of pattern that came from the typed text. The
// home directory substituted for a leading "~" stays literal.
func foldTyped(text, expanded, pattern string) string {
	if !strings.HasPrefix(text, "~") || !strings.HasSuffix(expanded, text[1:]) {
		return foldCase(pattern)
	}
	home := expanded[:len(expanded)-len(text)+1]
	if home == "" || !strings.HasPrefix(pattern, home) {
		return foldCase(pattern)
	}
	return home + foldCase(pattern[len(home):])
}

// inspect applies the kind filter and the absolute option to one match.
func (d *Dir) inspect(match string) (string, bool) {
	info, err := os.Stat(match)
	if err != nil {
		logging.LogSkippedCandidate(dirSource, match, err)
		return "", false
	}
	if !d.opts.kind.accepts(info.Mode()) {
		return "", false
	}
	if !d.opts.absolute {
		return match, true
	}

	abs, err := canonical(match)
	if err != nil {
		logging.LogSkippedCandidate(dirSource, match, err)
		return "", false
	}
	return abs, true
}

func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
