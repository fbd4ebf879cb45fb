package dirdiff

import (
	"path/filepath"
	"slices"
	"strings"
)

// ignored holds the extensions excluded from counting and comparison.
//
//nolint:gochecknoglobals // Read-only lookup table
var ignored = map[string]struct{}{
	".tmp":  {},
	".log":  {},
	".ini":  {},
	".zip":  {},
	".lrv":  {},
	".insv": {},
}

// Ignorable reports whether ext is one of the ignored extensions.
// The comparison is exact; callers decide about case folding.
func Ignorable(ext string) bool {
	_, ok := ignored[ext]

	return ok
}

// IgnoredExtensions returns the ignored extensions in sorted order.
func IgnoredExtensions() []string {
	exts := make([]string, 0, len(ignored))
	for ext := range ignored {
		exts = append(exts, ext)
	}

	slices.Sort(exts)

	return exts
}

// Ext returns the suffix of the final element of path, including the dot.
//
// Unlike filepath.Ext, a name whose only dot is its first character
// (".bashrc") or whose last character is a dot ("notes.") has no suffix.
func Ext(path string) string {
	name := filepath.Base(path)

	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}

	return name[i:]
}

// Filter decides which files take part in a tree comparison.
type Filter struct {
	// StrictCase checks the raw suffix against the ignored set.
	// By default the suffix is lower-cased first, so "CLIP.LRV" is skipped.
	StrictCase bool
}

// Skip reports whether the file at path is left out of the comparison.
func (f Filter) Skip(path string) bool {
	ext := Ext(path)
	if !f.StrictCase {
		ext = strings.ToLower(ext)
	}

	return Ignorable(ext)
}
