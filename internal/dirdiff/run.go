package dirdiff

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// startProgressReporter invokes hook(files) on each tick until ctx is done.
func startProgressReporter(ctx context.Context, t *tally, hook func(int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(t.count())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run walks opt.PathA and opt.PathB once each, tallies both by extension
// and compares their relative path sets.
//
// The walk can be cancelled via ctx. Progress updates are sent to
// progressHook if provided.
func Run(ctx context.Context, opt Options, progressHook func(int64)) (*Report, error) {
	log := opt.logger()
	opt.Logger = log

	seen := &tally{}

	// Child context stops the progress reporter on return.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, seen, progressHook, opt.ProgressInterval)

	log.Debug("ignored extensions", zap.Strings("extensions", IgnoredExtensions()))
	log.Debug("case handling", zap.Bool("strict", opt.StrictCase))

	start := time.Now()
	w := newWalker(opt, seen)

	countsA, setA, rootA, err := scan(ctx, w, opt.PathA, opt.filter())
	if err != nil {
		return nil, err
	}

	countsB, setB, rootB, err := scan(ctx, w, opt.PathB, opt.filter())
	if err != nil {
		return nil, err
	}

	report := &Report{
		Diff:         *resolve(rootA, rootB, setA, setB),
		CountsA:      countsA,
		CountsB:      countsB,
		FilesScanned: seen.count(),
		StrictCase:   opt.StrictCase,
		Elapsed:      time.Since(start),
	}

	log.Debug("run finished",
		zap.Int64("files", report.FilesScanned),
		zap.Int("only_in_a", len(report.OnlyInA)),
		zap.Int("only_in_b", len(report.OnlyInB)),
		zap.Duration("elapsed", report.Elapsed),
	)

	return report, nil
}

// scan walks root once, feeding both the extension tally and the relative
// path set.
func scan(ctx context.Context, w walker, root string, filter Filter) (map[string]int, *pathSet, string, error) {
	collector := newExtCollector()
	set := newPathSet(filter)

	abs, err := w.walk(ctx, root, func(path, rel string) error {
		collector.add(path)
		set.add(rel)

		return nil
	})
	if err != nil {
		return nil, nil, "", err
	}

	return collector.finalize(), set, abs, nil
}
