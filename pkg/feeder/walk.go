package feeder

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/muurk/fui/internal/logging"
)

const walkSource = "feeder.walk"

// Walk completes paths found anywhere below a fixed root directory.
//
// Every query walks the tree again in lexical order and keeps entries whose
// full path contains the text, ignoring case. The walk stops as soon as count
// matches are collected. Symlinks are classified by their target but never
// followed. Offset is not supported and is ignored.
type Walk struct {
	root string
	opts options
}

// NewWalk creates a recursive feeder over root. The root itself is never
// returned.
func NewWalk(root string, opts ...Option) *Walk {
	return &Walk{root: root, opts: buildOptions(opts)}
}

// Root returns the directory being walked.
func (w *Walk) Root() string {
	return w.root
}

// entryMode is the mode of the entry with symlinks followed, matching what
// Dir sees through os.Stat. Linked directories are reported but not entered.
func entryMode(path string, d fs.DirEntry) fs.FileMode {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.Type()
	}
	info, err := os.Stat(path)
	if err != nil {
		logging.LogSkippedCandidate(walkSource, path, err)
		return d.Type()
	}
	return info.Mode()
}

// Query returns up to count paths below the root containing text.
func (w *Walk) Query(text string, _ int, count int) []string {
	if count <= 0 {
		return nil
	}

	root := w.root
	if w.opts.absolute {
		abs, err := canonical(root)
		if err != nil {
			logging.LogSkippedCandidate(walkSource, root, err)
			return nil
		}
		root = abs
	}

	needle := strings.ToLower(text)
	found := make([]string, 0, count)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logging.LogSkippedCandidate(walkSource, path, err)
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}
		if w.opts.noHidden && isHidden(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !w.opts.kind.accepts(entryMode(path, d)) {
			return nil
		}
		if !strings.Contains(strings.ToLower(path), needle) {
			return nil
		}

		found = append(found, path)
		if len(found) >= count {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.SkipAll) {
		logging.LogSkippedCandidate(walkSource, root, err)
	}

	logging.LogQuery(walkSource, text, 0, count, len(found))
	return found
}
