package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/dirdiff/internal/dirdiff"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// DefaultOutFile is the file unique paths are appended to by default.
const DefaultOutFile = "unique_files.txt"

//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"table", "json"}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}

// addCommonFlags registers the flags shared by all commands.
func addCommonFlags(flags *pflag.FlagSet, options *dirdiff.Options) {
	flags.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	flags.BoolVar(&options.StrictCase, "strict-case", false,
		"Match ignored extensions against the raw suffix when comparing (FOO.TMP is kept)")
	flags.BoolVar(&options.Follow, "follow", false, "Descend into symlinked directories")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
}

func validate(options dirdiff.Options) error {
	if !slices.Contains(allowedOutputs, options.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
	}

	return nil
}

// Command builds the root command and its subcommands.
func (c CLI) Command() *cobra.Command {
	var options dirdiff.Options

	root := &cobra.Command{
		Use:   "dirdiff [flags] [dir-a] [dir-b]",
		Short: "Compare two directory trees by relative file path",
		Long: heredoc.Docf(`
			dirdiff counts the files of two directory trees by extension and reports
			the files whose path, relative to their root, exists in only one tree.

			File contents are not compared. Files with an ignored extension
			(%v) are left out of both the counts and the comparison.

			Directories missing from the command line are read from standard input,
			one per line. Each unique file is printed and appended, as an absolute
			path, to the output file.
		`, dirdiff.IgnoredExtensions()),
		Example: heredoc.Doc(`
			dirdiff /media/card/DCIM /backup/DCIM
			dirdiff -f missing.txt ./left ./right
			dirdiff count ./photos
			dirdiff diff -o json ./left ./right
		`),
		Version:       c.version,
		Args:          cobra.MaximumNArgs(2), //nolint:mnd // Two roots
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate(options); err != nil {
				return err
			}

			paths, err := promptPaths(cmd.InOrStdin(), cmd.ErrOrStderr(), args)
			if err != nil {
				return err
			}

			options.PathA, options.PathB = paths[0], paths[1]

			return runLogic(cmd, options)
		},
	}

	addCommonFlags(root.PersistentFlags(), &options)
	root.Flags().StringVarP(&options.OutFile, "file", "f", DefaultOutFile,
		"File to append unique paths to (empty to disable)")

	root.AddCommand(countCommand(&options), diffCommand(&options))

	return root
}

func countCommand(options *dirdiff.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "count DIR...",
		Short: "Count files by extension",
		Long: heredoc.Doc(`
			Count the regular files below each directory by lower-cased extension.
			Files without an extension are listed under "".
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate(*options); err != nil {
				return err
			}

			return countLogic(cmd, *options, args)
		},
	}
}

func diffCommand(options *dirdiff.Options) *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "diff DIR_A DIR_B",
		Short: "List files present in only one of two directories",
		Long: heredoc.Doc(`
			Print the absolute path of every file whose relative path exists below
			only one of the two directories, one per line.
		`),
		Args: cobra.ExactArgs(2), //nolint:mnd // Two roots
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate(*options); err != nil {
				return err
			}

			pathA, pathB := cleanPath(args[0]), cleanPath(args[1])
			if pathA == "" || pathB == "" {
				return errors.New("directory paths cannot be empty")
			}

			opts := *options
			opts.PathA, opts.PathB, opts.OutFile = pathA, pathB, outFile

			return diffLogic(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&outFile, "file", "f", "", "File to append unique paths to")

	return cmd
}
