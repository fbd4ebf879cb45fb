package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idelchi/dirdiff/internal/dirdiff"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func isJSON(options dirdiff.Options) bool {
	return strings.ToLower(options.Output) == "json"
}

// progress returns a hook printing an in-place status line to w, and a
// function clearing it. Both are no-ops unless w is an interactive terminal.
func progress(w io.Writer, options dirdiff.Options) (func(int64), func()) {
	if isJSON(options) || options.Debug || !isTerminal(w) {
		return nil, func() {}
	}

	// Hide cursor for in-place updates.
	fmt.Fprint(w, "\033[?25l")

	hook := func(files int64) {
		fmt.Fprintf(w, "\r\033[2K%s\r", fmt.Sprintf("Scanning… %s files", humanize.Comma(files)))
	}

	return hook, func() {
		fmt.Fprint(w, "\r\033[2K\r\033[?25h")
	}
}

func runLogic(cmd *cobra.Command, options dirdiff.Options) error {
	log := dirdiff.NewLogger(options.Debug)
	defer log.Sync() //nolint:errcheck // Nothing to do on a failed flush

	options.Logger = log

	hook, done := progress(cmd.ErrOrStderr(), options)

	report, err := dirdiff.Run(contextOf(cmd), options, hook)

	done()

	if err != nil {
		return err
	}

	if isJSON(options) {
		err = PrintJSON(report, cmd.OutOrStdout())
	} else {
		err = PrintReport(report, cmd.OutOrStdout())
	}

	if err != nil {
		return err
	}

	return appendResults(cmd, log, options.OutFile, report.Unique())
}

// rootCounts is the JSON form of one counted root.
type rootCounts struct {
	// Root is the absolute path of the counted directory.
	Root string `json:"root"`
	// Counts maps extensions to file counts.
	Counts map[string]int `json:"counts"`
}

func countLogic(cmd *cobra.Command, options dirdiff.Options, roots []string) error {
	log := dirdiff.NewLogger(options.Debug)
	defer log.Sync() //nolint:errcheck // Nothing to do on a failed flush

	options.Logger = log

	results := make([]rootCounts, 0, len(roots))

	for _, root := range roots {
		counts, err := dirdiff.CountExtensions(contextOf(cmd), root, options)
		if err != nil {
			return err
		}

		abs, err := filepath.Abs(root)
		if err != nil {
			return fmt.Errorf("resolving absolute path of %q: %w", root, err)
		}

		if !isJSON(options) {
			if err := PrintCounts(abs, counts, cmd.OutOrStdout()); err != nil {
				return err
			}

			continue
		}

		results = append(results, rootCounts{Root: abs, Counts: counts})
	}

	if isJSON(options) {
		return PrintJSON(results, cmd.OutOrStdout())
	}

	return nil
}

func diffLogic(cmd *cobra.Command, options dirdiff.Options) error {
	log := dirdiff.NewLogger(options.Debug)
	defer log.Sync() //nolint:errcheck // Nothing to do on a failed flush

	options.Logger = log

	diff, err := dirdiff.Compare(contextOf(cmd), options.PathA, options.PathB, options)
	if err != nil {
		return err
	}

	if isJSON(options) {
		err = PrintJSON(diff, cmd.OutOrStdout())
	} else {
		err = PrintPaths(diff.Unique(), cmd.OutOrStdout())
	}

	if err != nil {
		return err
	}

	return appendResults(cmd, log, options.OutFile, diff.Unique())
}

// appendResults appends paths to file, when one is configured.
func appendResults(cmd *cobra.Command, log *zap.Logger, file string, paths []string) error {
	if file == "" {
		return nil
	}

	if err := appendLines(file, paths); err != nil {
		return err
	}

	log.Debug("appended unique paths", zap.String("file", file), zap.Int("count", len(paths)))

	if len(paths) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s unique paths appended to %s\n", humanize.Comma(int64(len(paths))), file)
	}

	return nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
