package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// cleanPath trims whitespace, surrounding quotes and the invisible
// direction marks that "Copy as path" on Windows puts around a path.
func cleanPath(raw string) string {
	path := strings.TrimSpace(raw)
	path = strings.Trim(path, "\u202a\u202b\u202c\u202d\u202e\u200e\u200f\ufeff")
	path = strings.TrimSpace(path)

	if len(path) >= 2 && (path[0] == '"' || path[0] == '\'') && path[len(path)-1] == path[0] {
		path = path[1 : len(path)-1]
	}

	return path
}

// promptPaths returns the two directories to compare. Arguments given on
// the command line are cleaned the same way; missing ones are read from in, one per
// line, with a prompt written to out. Paths that clean to empty are
// rejected rather than defaulting to the working directory.
func promptPaths(in io.Reader, out io.Writer, args []string) ([2]string, error) {
	var paths [2]string

	scanner := bufio.NewScanner(in)
	labels := [2]string{"First", "Second"}

	for i := range paths {
		if i < len(args) {
			paths[i] = cleanPath(args[i])
			if paths[i] == "" {
				return paths, errors.New("directory paths cannot be empty")
			}

			continue
		}

		fmt.Fprintf(out, "%s directory: ", labels[i])

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return paths, fmt.Errorf("reading %s directory: %w", strings.ToLower(labels[i]), err)
			}

			return paths, fmt.Errorf("reading %s directory: %w", strings.ToLower(labels[i]), io.ErrUnexpectedEOF)
		}

		paths[i] = cleanPath(scanner.Text())
		if paths[i] == "" {
			return paths, errors.New("directory paths cannot be empty")
		}
	}

	return paths, nil
}
