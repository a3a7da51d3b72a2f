package core

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// sweep tries every millisecond seed in [StartSecond, EndSecond) seconds.
// Seeds are handed out in batches of one per worker and a batch must finish
// before the next one starts. stopped reports whether any seed in the range
// went untried.
func (r *run) sweep() (stopped bool, err error) {
	searchers := make([]*seedSearcher, r.threads)
	for i := range searchers {
		s, err := r.newSeedSearcher(i)
		if err != nil {
			return false, err
		}
		searchers[i] = s
	}
	matches := make([]*Match, len(searchers))
	var skipped atomic.Bool

	start, end := r.req.StartSecond*1000, r.req.EndSecond*1000
	batch := 0
	for base := start; base < end; base += int64(len(searchers)) {
		if !r.active() {
			return true, nil
		}
		g := new(errgroup.Group)
		for i, s := range searchers {
			seed := base + int64(i)
			matches[i] = nil
			if seed >= end {
				continue
			}
			i, s := i, s
			g.Go(func() error {
				if !r.active() {
					skipped.Store(true)
					return nil
				}
				matches[i] = s.search(seed)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return false, err
		}
		for i, m := range matches {
			if m != nil {
				r.describe(m, searchers[i].validator, searchers[i].material[m.Offset:m.Offset+KeyLength])
				r.report(m)
				return false, nil
			}
		}
		if skipped.Load() {
			return true, nil
		}
		batch++
		if r.progressBatches > 0 && batch%r.progressBatches == 0 {
			next := base + int64(len(searchers))
			r.log.Info().
				Int64("seed", next).
				Int64("end", end).
				Int64("workSeconds", (next-start)/1000).
				Msgf("Progress: %d/%dms", next, end)
		}
	}
	return false, nil
}
