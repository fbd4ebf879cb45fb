// Package dirdiff compares two directory trees by relative file path.
//
// It walks directory trees using fastwalk for parallel traversal, tallies
// files by extension and reports the files that exist under only one of
// two roots. A fixed set of ignorable extensions is left out of both the
// tallies and the comparison.
package dirdiff
