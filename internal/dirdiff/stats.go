package dirdiff

import (
	"slices"
	"strings"
	"sync"
)

// tally counts regular files seen by one or more walks.
// fastwalk calls back from multiple goroutines, so access is locked.
type tally struct {
	mu    sync.Mutex
	files int64
}

func (t *tally) add() {
	if t == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.files++
}

func (t *tally) count() int64 {
	if t == nil {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return t.files
}

// extCollector aggregates files by lower-cased extension.
type extCollector struct {
	mu     sync.Mutex
	counts map[string]int
}

func newExtCollector() *extCollector {
	return &extCollector{counts: make(map[string]int)}
}

// add records the file at path unless its extension is ignored.
func (c *extCollector) add(path string) {
	ext := strings.ToLower(Ext(path))
	if Ignorable(ext) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[ext]++
}

func (c *extCollector) finalize() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.counts
}

// pathSet collects the relative paths of the files below one root.
type pathSet struct {
	mu     sync.Mutex
	filter Filter
	paths  map[string]struct{}
}

func newPathSet(filter Filter) *pathSet {
	return &pathSet{filter: filter, paths: make(map[string]struct{})}
}

// add records rel unless the filter skips it.
func (s *pathSet) add(rel string) {
	if s.filter.Skip(rel) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths[rel] = struct{}{}
}

// symmetricDifference returns the sorted relative paths found only in a
// and only in b. Every member is tagged with its side while merging.
func symmetricDifference(a, b *pathSet) (onlyA, onlyB []string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	b.mu.Lock()
	defer b.mu.Unlock()

	onlyA = make([]string, 0)
	onlyB = make([]string, 0)

	for rel := range a.paths {
		if _, ok := b.paths[rel]; !ok {
			onlyA = append(onlyA, rel)
		}
	}

	for rel := range b.paths {
		if _, ok := a.paths[rel]; !ok {
			onlyB = append(onlyB, rel)
		}
	}

	slices.Sort(onlyA)
	slices.Sort(onlyB)

	return onlyA, onlyB
}
