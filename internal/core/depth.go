package core

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// depth walks the stream of a single seed. Worker i starts at stream offset
// i and every worker advances by the worker count, so between them the
// workers try each window exactly once. stopped reports whether a worker
// gave up before its window was matched or reached MaxDepth.
func (r *run) depth() (stopped bool, err error) {
	validators := make([]*Validator, r.threads)
	for i := range validators {
		v, err := r.newValidator()
		if err != nil {
			return false, err
		}
		validators[i] = v
	}
	var interrupted atomic.Bool
	g := new(errgroup.Group)
	for i, v := range validators {
		worker, v := i, v
		g.Go(func() error {
			if !r.walk(worker, v) {
				interrupted.Store(true)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}
	return interrupted.Load(), nil
}

// walk returns false when the worker was told to stop.
func (r *run) walk(worker int, v *Validator) bool {
	w := NewWindow(r.newGenerator(), r.req.Seed, worker, r.threads)
	next := r.progressDraws
	for r.active() {
		if r.req.MaxDepth > 0 && w.Position() >= r.req.MaxDepth {
			r.log.Debug().Int("worker", worker).Uint64("depth", w.Depth()).Msg("Worker reached max depth")
			return true
		}
		if v.Try(w.Key()) {
			m := &Match{
				Seed:     r.req.Seed,
				Offset:   -1,
				Position: w.Position(),
				Depth:    w.Depth(),
				Worker:   worker,
			}
			r.describe(m, v, w.Key())
			r.report(m)
			return true
		}
		w.Advance()
		if r.progressDraws > 0 && w.Depth() >= next {
			r.log.Info().Int("worker", worker).Uint64("depth", w.Depth()).Msgf("Depth:%d", w.Depth())
			next += r.progressDraws
		}
	}
	return false
}
