package cli

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/idelchi/dirdiff/internal/dirdiff"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

//nolint:gochecknoglobals // Shared style
var headingStyle = lipgloss.NewStyle().Bold(true)

func heading(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\n%s\n", headingStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintJSON outputs v in indented JSON format.
func PrintJSON(v any, writer io.Writer) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// sortedExtensions orders extensions by count (largest first), then name.
func sortedExtensions(counts map[string]int) []string {
	exts := make([]string, 0, len(counts))
	for ext := range counts {
		exts = append(exts, ext)
	}

	slices.SortFunc(exts, func(a, b string) int {
		if c := cmp.Compare(counts[b], counts[a]); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})

	return exts
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}

	return humanize.Comma(int64(n)) + " " + word + "s"
}

//nolint:forbidigo // This function prints output to the console.
func writeCounts(w *tabwriter.Writer, root string, counts map[string]int) {
	heading(w, "Extensions in '%s':", root)

	if len(counts) == 0 {
		fmt.Fprintln(w, "  (no files)")

		return
	}

	for i, ext := range sortedExtensions(counts) {
		label := ext
		if label == "" {
			label = "\"\""
		}

		fmt.Fprintf(w, "  %d) %s:\t%s\n", i+1, label, plural(counts[ext], "file"))
	}
}

//nolint:forbidigo // This function prints output to the console.
func writePaths(w *tabwriter.Writer, title string, paths []string) {
	heading(w, "%s (%d):", title, len(paths))

	for _, p := range paths {
		fmt.Fprintf(w, "  '%s'\n", p)
	}
}

// PrintCounts outputs the extension counts of one root as a table.
func PrintCounts(root string, counts map[string]int, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	writeCounts(w, root, counts)

	return w.Flush()
}

// PrintPaths outputs one path per line.
func PrintPaths(paths []string, writer io.Writer) error {
	for _, p := range paths {
		if _, err := fmt.Fprintln(writer, p); err != nil {
			return err
		}
	}

	return nil
}

// PrintReport outputs a full run in human-readable table format.
//
//nolint:forbidigo // This function prints output to the console.
func PrintReport(report *dirdiff.Report, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	writeCounts(w, report.RootA, report.CountsA)
	writeCounts(w, report.RootB, report.CountsB)

	writePaths(w, "Only in '"+report.RootA+"'", report.OnlyInA)
	writePaths(w, "Only in '"+report.RootB+"'", report.OnlyInB)

	heading(w, "Stats:")
	fmt.Fprintf(w, "Files scanned:\t%s\n", humanize.Comma(report.FilesScanned))
	fmt.Fprintf(w, "Unique files:\t%s\n", humanize.Comma(int64(len(report.OnlyInA)+len(report.OnlyInB))))

	if report.StrictCase {
		fmt.Fprintf(w, "Case handling:\tstrict\n")
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", report.Elapsed)

	return w.Flush()
}
