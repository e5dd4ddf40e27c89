package feeder

import (
	"os"
	"strings"
	"unicode"
)

const globMeta = "*?[{"

// AddGlob turns typed path text into a glob by wrapping the last path
// segment in wildcards. A last segment that already holds a wildcard is left
// alone, and a trailing separator gains a single "*".
//
//	""               -> "*"
//	"/"              -> "/*"
//	"/home/user/xxx" -> "/home/user/*xxx*"
//	"/home/user/*xx" -> "/home/user/*xx"
//	"**/xxx"         -> "**/*xxx*"
func AddGlob(path string) string {
	dir, last := splitLast(path)
	if last == "" {
		return dir + "*"
	}
	if strings.ContainsAny(last, globMeta) {
		return path
	}
	return dir + "*" + last + "*"
}

// splitLast splits path after its final separator. dir keeps the separator.
func splitLast(path string) (dir, last string) {
	i := strings.LastIndexAny(path, separators())
	if i < 0 {
		return "", path
	}
	return path[:i+1], path[i+1:]
}

func separators() string {
	if os.PathSeparator == '/' {
		return "/"
	}
	return "/" + string(os.PathSeparator)
}

// hasUpper reports whether s holds an upper-case letter, which switches
// matching to case-sensitive mode.
func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// foldCase rewrites letters outside bracket expressions into two-case
// classes, so "ab*" becomes "[aA][bB]*". Escaped runes and bracket contents
// are copied unchanged.
func foldCase(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern) * 2)

	inClass := false
	escaped := false
	for _, r := range pattern {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\' && os.PathSeparator != '\\':
			b.WriteRune(r)
			escaped = true
		case inClass:
			b.WriteRune(r)
			if r == ']' {
				inClass = false
			}
		case r == '[':
			b.WriteRune(r)
			inClass = true
		default:
			lower, upper := unicode.ToLower(r), unicode.ToUpper(r)
			if lower == upper {
				b.WriteRune(r)
				continue
			}
			b.WriteRune('[')
			b.WriteRune(lower)
			b.WriteRune(upper)
			b.WriteRune(']')
		}
	}
	return b.String()
}
