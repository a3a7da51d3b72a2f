package core

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/Jx2f/KeyHunter/internal/config"
	"github.com/Jx2f/KeyHunter/pkg/logger"
)

// Run states held by BruteForcer.state.
const (
	stateIdle int32 = iota
	stateRunning
	stateStopping
)

// Request describes one search. Strategy-specific fields are ignored by the
// other strategy.
type Request struct {
	Strategy   config.Strategy
	Ciphertext []byte
	Signature  Signature

	// offset
	StartSecond int64
	EndSecond   int64
	KeyDepth    int

	// depth
	Seed     int64
	MaxDepth uint64
}

// NewRequest builds a request from a validated search config.
func NewRequest(c *config.ConfigSearch) (*Request, error) {
	ciphertext, err := c.Ciphertext()
	if err != nil {
		return nil, err
	}
	signature, err := SignatureFor(c.Handshake, c.SignatureBytes())
	if err != nil {
		return nil, err
	}
	return &Request{
		Strategy:    c.Strategy,
		Ciphertext:  ciphertext,
		Signature:   signature,
		StartSecond: c.StartSecond,
		EndSecond:   c.EndSecond,
		KeyDepth:    c.KeyDepth,
		Seed:        c.Seed,
		MaxDepth:    c.MaxDepth,
	}, nil
}

func (r *Request) validate() error {
	if len(r.Ciphertext) != BlockSize {
		return errors.Wrapf(ErrInvalidCiphertext, "got %d bytes", len(r.Ciphertext))
	}
	if n := r.Signature.Len(); n != ShortSignature && n != LongSignature {
		return errors.Wrapf(ErrInvalidSignature, "got %d", n)
	}
	switch r.Strategy {
	case config.StrategyOffset:
		if r.KeyDepth <= KeyLength {
			return errors.Wrapf(config.ErrInvalidKeyDepth, "key depth %d", r.KeyDepth)
		}
		if r.EndSecond <= r.StartSecond {
			return errors.Wrapf(config.ErrInvalidRange, "range [%d, %d)", r.StartSecond, r.EndSecond)
		}
	case config.StrategyDepth:
	default:
		return errors.Wrapf(config.ErrInvalidStrategy, "%q", r.Strategy)
	}
	return nil
}

// BruteForcer runs at most one search at a time. The state word is the only
// value its workers share; generators and buffers are per worker.
type BruteForcer struct {
	threads         int
	batched         bool
	newGenerator    GeneratorFunc
	progressBatches int
	progressDraws   uint64

	state atomic.Int32
}

func NewBruteForcer(c *config.ConfigSearch) (*BruteForcer, error) {
	if c.Threads <= 0 {
		return nil, errors.Wrapf(config.ErrInvalidThreads, "got %d", c.Threads)
	}
	newGenerator, err := NewGeneratorFunc(c.Generator)
	if err != nil {
		return nil, err
	}
	return &BruteForcer{
		threads:         c.Threads,
		batched:         c.Batched,
		newGenerator:    newGenerator,
		progressBatches: c.ProgressBatches,
		progressDraws:   c.ProgressDraws,
	}, nil
}

// Running reports whether a search is active.
func (b *BruteForcer) Running() bool {
	return b.state.Load() != stateIdle
}

// Stop asks the active search to wind down. Workers notice at their next
// round; an in-flight decrypt always completes.
func (b *BruteForcer) Stop() {
	b.state.CompareAndSwap(stateRunning, stateStopping)
}

// BruteForce validates req, runs the search on the configured number of
// workers and blocks until all of them exit. While another search is active
// it returns immediately with StateSkipped.
func (b *BruteForcer) BruteForce(req *Request) (*Result, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	if !b.state.CompareAndSwap(stateIdle, stateRunning) {
		return &Result{State: StateSkipped}, nil
	}
	defer b.state.Store(stateIdle)

	r := &run{
		BruteForcer: b,
		req:         req,
		id:          uuid.NewString(),
		found:       make(chan *Match, 1),
	}
	r.log = logger.Logger.With().Str("run", r.id).Logger()
	r.log.Info().
		Str("strategy", string(req.Strategy)).
		Str("handshake", string(req.Signature.Handshake)).
		Int("signature", req.Signature.Len()).
		Int("threads", b.threads).
		Msg("Starting brute force")

	start := time.Now()
	var (
		stopped bool
		err     error
	)
	switch req.Strategy {
	case config.StrategyOffset:
		stopped, err = r.sweep()
	case config.StrategyDepth:
		stopped, err = r.depth()
	}
	if err != nil {
		return nil, err
	}
	result := r.result(stopped)
	result.Elapsed = time.Since(start)
	r.logResult(result)
	return result, nil
}

// run is the state of one BruteForce invocation.
type run struct {
	*BruteForcer
	req   *Request
	id    string
	log   zerolog.Logger
	found chan *Match
}

func (r *run) active() bool {
	return r.state.Load() == stateRunning
}

// report hands m to the caller unless another worker got there first, then
// tells every worker to stop.
func (r *run) report(m *Match) {
	select {
	case r.found <- m:
	default:
	}
	r.state.CompareAndSwap(stateRunning, stateStopping)
}

// result classifies a finished run. A match wins over everything; otherwise
// the run only counts as stopped if the strategy left part of its range
// untried.
func (r *run) result(stopped bool) *Result {
	result := &Result{RunID: r.id}
	select {
	case m := <-r.found:
		result.State = StateFound
		result.Match = m
	default:
		if stopped {
			result.State = StateStopped
		} else {
			result.State = StateExhausted
		}
	}
	return result
}

func (r *run) newValidator() (*Validator, error) {
	return NewValidator(r.req.Ciphertext, r.req.Signature, r.batched)
}

func (r *run) describe(m *Match, v *Validator, key []byte) {
	m.Key = string(key)
	h, err := DecodeHeader(v.Plaintext())
	if err != nil {
		r.log.Warn().Err(err).Msg("Failed to decode matched header")
		return
	}
	m.Header = h
}

func (r *run) logResult(result *Result) {
	switch result.State {
	case StateFound:
		m := result.Match
		r.log.Info().
			Int64("#seed", m.Seed).
			Int("offset", m.Offset).
			Uint64("position", m.Position).
			Uint64("depth", m.Depth).
			Int("worker", m.Worker).
			Str("key", m.Key).
			Dur("elapsed", result.Elapsed).
			Msg("Found key")
	case StateExhausted:
		r.log.Info().Dur("elapsed", result.Elapsed).Msg("Failed to find key within the given parameters")
	case StateStopped:
		r.log.Info().Dur("elapsed", result.Elapsed).Msg("Search stopped")
	}
}
