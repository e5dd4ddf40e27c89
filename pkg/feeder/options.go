package feeder

import (
	"io/fs"
	"strings"
)

// Kind restricts filesystem feeders to a kind of entry.
type Kind int

const (
	// KindAll accepts files and directories
	KindAll Kind = iota
	// KindDirs accepts directories only
	KindDirs
	// KindFiles accepts regular files only
	KindFiles
)

// String returns the lower-case name used in configuration files.
func (k Kind) String() string {
	switch k {
	case KindDirs:
		return "dirs"
	case KindFiles:
		return "files"
	default:
		return "all"
	}
}

// ParseKind converts "all", "dirs" or "files" to a Kind.
// Empty input means KindAll.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "", "all":
		return KindAll, true
	case "dirs", "dir":
		return KindDirs, true
	case "files", "file":
		return KindFiles, true
	default:
		return KindAll, false
	}
}

func (k Kind) accepts(mode fs.FileMode) bool {
	switch k {
	case KindDirs:
		return mode.IsDir()
	case KindFiles:
		return mode.IsRegular()
	default:
		return true
	}
}

type options struct {
	base     string
	kind     Kind
	absolute bool
	noHidden bool
}

// Option configures the filesystem feeders (Dir and Walk).
type Option func(*options)

// Dirs restricts results to directories.
func Dirs() Option {
	return func(o *options) { o.kind = KindDirs }
}

// Files restricts results to regular files.
func Files() Option {
	return func(o *options) { o.kind = KindFiles }
}

// OfKind sets the entry kind explicitly.
func OfKind(k Kind) Option {
	return func(o *options) { o.kind = k }
}

// Absolute resolves results to canonical absolute paths.
func Absolute() Option {
	return func(o *options) { o.absolute = true }
}

// NoHidden drops dot-prefixed entries unless the typed segment itself
// starts with a dot.
func NoHidden() Option {
	return func(o *options) { o.noHidden = true }
}

// In sets the directory relative input is resolved against. Defaults to ".".
func In(base string) Option {
	return func(o *options) { o.base = base }
}

func buildOptions(opts []Option) options {
	o := options{base: "."}
	for _, opt := range opts {
		opt(&o)
	}
	if o.base == "" {
		o.base = "."
	}
	return o
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
