package dirdiff

import (
	"context"
	"path/filepath"
)

// Compare walks rootA and rootB and returns the files whose relative path
// exists under only one of them. Contents are not compared.
func Compare(ctx context.Context, rootA, rootB string, opt Options) (*Diff, error) {
	w := newWalker(opt, nil)

	a, absA, err := relativePaths(ctx, w, rootA, opt.filter())
	if err != nil {
		return nil, err
	}

	b, absB, err := relativePaths(ctx, w, rootB, opt.filter())
	if err != nil {
		return nil, err
	}

	return resolve(absA, absB, a, b), nil
}

// DiffTrees returns the absolute paths of the files present under only one
// of rootA and rootB. No particular order is promised.
func DiffTrees(ctx context.Context, rootA, rootB string, opt Options) ([]string, error) {
	diff, err := Compare(ctx, rootA, rootB, opt)
	if err != nil {
		return nil, err
	}

	return diff.Unique(), nil
}

// relativePaths builds the relative path set of root.
func relativePaths(ctx context.Context, w walker, root string, filter Filter) (*pathSet, string, error) {
	set := newPathSet(filter)

	abs, err := w.walk(ctx, root, func(_, rel string) error {
		set.add(rel)

		return nil
	})
	if err != nil {
		return nil, "", err
	}

	return set, abs, nil
}

// resolve joins the symmetric difference of a and b back onto the root
// each path came from.
func resolve(rootA, rootB string, a, b *pathSet) *Diff {
	onlyA, onlyB := symmetricDifference(a, b)

	for i, rel := range onlyA {
		onlyA[i] = filepath.Join(rootA, rel)
	}

	for i, rel := range onlyB {
		onlyB[i] = filepath.Join(rootB, rel)
	}

	return &Diff{
		RootA:   rootA,
		RootB:   rootB,
		OnlyInA: onlyA,
		OnlyInB: onlyB,
	}
}
