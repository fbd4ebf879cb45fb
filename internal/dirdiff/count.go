package dirdiff

import (
	"context"
)

// CountExtensions tallies the regular files below root by lower-cased
// extension. Ignored extensions never appear as keys and files without an
// extension are counted under the empty string.
//
// An error from the walk is returned as is, without a partial result.
func CountExtensions(ctx context.Context, root string, opt Options) (map[string]int, error) {
	collector := newExtCollector()

	_, err := newWalker(opt, nil).walk(ctx, root, func(path, _ string) error {
		collector.add(path)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return collector.finalize(), nil
}
