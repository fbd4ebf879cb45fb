package dirdiff

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"
)

// ErrNotDirectory is returned when a root exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// visitFunc is called for every regular file below a root with its absolute
// path and its path relative to the root. It may be called concurrently.
type visitFunc func(path, rel string) error

// walker enumerates the regular files below a root.
type walker struct {
	follow bool
	log    *zap.Logger
	tally  *tally
}

func newWalker(opt Options, t *tally) walker {
	return walker{
		follow: opt.Follow,
		log:    opt.logger(),
		tally:  t,
	}
}

// resolveRoot validates path and returns it as a clean absolute path.
func resolveRoot(path string) (string, error) {
	if path == "" {
		path = "."
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path of %q: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("accessing path %q: %w", path, err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("path %q: %w", path, ErrNotDirectory)
	}

	return abs, nil
}

// isRegular reports whether the entry is a regular file.
// Symbolic links are resolved; dangling or looping links are not files.
func isRegular(path string, d fs.DirEntry) (bool, error) {
	if d.Type().IsRegular() {
		return true, nil
	}

	if d.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}

	info, err := fastwalk.StatDirEntry(path, d)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ELOOP) || errors.Is(err, syscall.ENOTDIR) {
			return false, nil
		}

		return false, fmt.Errorf("resolving link %q: %w", path, err)
	}

	return info.Mode().IsRegular(), nil
}

// walk resolves root and calls visit for every regular file below it.
// It returns the absolute root. The first error aborts the walk.
func (w walker) walk(ctx context.Context, root string, visit visitFunc) (string, error) {
	root, err := resolveRoot(root)
	if err != nil {
		return "", err
	}

	w.log.Debug("walking", zap.String("root", root), zap.Bool("follow", w.follow))

	conf := &fastwalk.Config{
		Follow: w.follow,
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path != root && errors.Is(err, fs.ErrNotExist) {
				w.log.Debug("entry vanished during walk", zap.String("path", path))

				return nil
			}

			return fmt.Errorf("walking %q: %w", path, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() {
			return nil
		}

		regular, err := isRegular(path, d)
		if err != nil {
			return err
		}

		if !regular {
			w.log.Debug("skipping non-regular entry", zap.String("path", path))

			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("relating %q to %q: %w", path, root, err)
		}

		w.tally.add()

		return visit(path, rel)
	})
	if walkErr != nil {
		return "", walkErr
	}

	return root, nil
}
