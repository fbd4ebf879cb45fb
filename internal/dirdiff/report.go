package dirdiff

import (
	"time"

	"go.uber.org/zap"
)

// Options configures a comparison and CLI behavior.
type Options struct {
	// PathA is the first directory to compare.
	PathA string
	// PathB is the second directory to compare.
	PathB string
	// StrictCase checks raw, non-lower-cased suffixes against the ignored
	// extensions when building the relative path sets.
	StrictCase bool
	// Follow enables descending into symlinked directories.
	Follow bool
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Logger receives debug output. When nil, one is built from Debug.
	Logger *zap.Logger
	// Output represents output format (table or json).
	Output string
	// OutFile is the file unique paths are appended to (empty = none).
	OutFile string
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return NewLogger(o.Debug)
}

func (o Options) filter() Filter {
	return Filter{StrictCase: o.StrictCase}
}

// Diff lists the files that exist under only one of two roots.
type Diff struct {
	// RootA is the absolute path of the first root.
	RootA string `json:"root_a"`
	// RootB is the absolute path of the second root.
	RootB string `json:"root_b"`
	// OnlyInA contains absolute paths below RootA missing from RootB.
	OnlyInA []string `json:"only_in_a"`
	// OnlyInB contains absolute paths below RootB missing from RootA.
	OnlyInB []string `json:"only_in_b"`
}

// Unique returns OnlyInA followed by OnlyInB.
func (d *Diff) Unique() []string {
	unique := make([]string, 0, len(d.OnlyInA)+len(d.OnlyInB))
	unique = append(unique, d.OnlyInA...)

	return append(unique, d.OnlyInB...)
}

// Report holds the result of a full run over two roots.
type Report struct {
	Diff

	// CountsA maps extensions to file counts below RootA.
	CountsA map[string]int `json:"counts_a"`
	// CountsB maps extensions to file counts below RootB.
	CountsB map[string]int `json:"counts_b"`
	// FilesScanned is the number of regular files seen in both trees.
	FilesScanned int64 `json:"files_scanned"`
	// StrictCase records whether the comparison used raw suffixes.
	StrictCase bool `json:"strict_case"`
	// Elapsed is the total time taken for the run.
	Elapsed time.Duration `json:"elapsed"`
}
