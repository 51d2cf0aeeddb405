// Package sweep evaluates every estimator over a logarithmic range of key
// counts and collects the results into an ordered comparison table.
package sweep

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/AmmannChristian/keybits/internal/estimate"
)

const (
	// DefaultMinExponent and DefaultMaxExponent bound the default sweep,
	// n = 10^2 through 10^9.
	DefaultMinExponent = 2
	DefaultMaxExponent = 9

	// MaxExponent is the largest power of ten that fits in an int64.
	MaxExponent = 18
)

// Observer is notified after each successful estimator evaluation.
type Observer func(method estimate.Method, n int64, bits float64, elapsed time.Duration)

// Evaluator computes the estimate of method for n keys.
type Evaluator func(method estimate.Method, n int64) (float64, error)

// Sweep evaluates the estimators for n = 10^e, e in [minExp, maxExp].
type Sweep struct {
	minExp   int
	maxExp   int
	methods  []estimate.Method
	evaluate Evaluator
	logger   zerolog.Logger
	observer Observer
}

// Option configures a Sweep.
type Option func(*Sweep)

// WithExponents sets the inclusive exponent range of the sweep.
func WithExponents(minExp, maxExp int) Option {
	return func(s *Sweep) {
		s.minExp = minExp
		s.maxExp = maxExp
	}
}

// WithLogger sets the logger used for progress output.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Sweep) {
		s.logger = logger
	}
}

// WithObserver registers a callback invoked after every evaluation.
func WithObserver(o Observer) Option {
	return func(s *Sweep) {
		s.observer = o
	}
}

// WithEvaluator replaces the estimator dispatch, which defaults to
// estimate.Method.Estimate.
func WithEvaluator(e Evaluator) Option {
	return func(s *Sweep) {
		s.evaluate = e
	}
}

// New returns a Sweep over the default range using every method.
func New(opts ...Option) *Sweep {
	s := &Sweep{
		minExp:   DefaultMinExponent,
		maxExp:   DefaultMaxExponent,
		methods:  estimate.Methods(),
		evaluate: estimate.Method.Estimate,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// KeyCounts returns 10^e for each e in [minExp, maxExp], ascending.
func KeyCounts(minExp, maxExp int) ([]int64, error) {
	if minExp < 0 || maxExp > MaxExponent || minExp > maxExp {
		return nil, fmt.Errorf("invalid exponent range [%d, %d] (must satisfy 0 <= min <= max <= %d)", minExp, maxExp, MaxExponent)
	}

	n := int64(1)
	for e := 0; e < minExp; e++ {
		n *= 10
	}

	counts := make([]int64, 0, maxExp-minExp+1)
	for e := minExp; ; e++ {
		counts = append(counts, n)
		if e == maxExp {
			return counts, nil
		}
		n *= 10
	}
}

// Run evaluates every method for every key count, sizes in the outer loop
// and methods in the inner loop. The first estimator error aborts the run
// and no table is returned.
func (s *Sweep) Run() (*Table, error) {
	counts, err := KeyCounts(s.minExp, s.maxExp)
	if err != nil {
		return nil, err
	}

	table := &Table{records: make([]Record, 0, len(counts)*len(s.methods))}
	start := time.Now()

	for _, n := range counts {
		for _, m := range s.methods {
			evalStart := time.Now()
			bits, err := s.evaluate(m, n)
			if err != nil {
				return nil, fmt.Errorf("estimate %s for %d keys: %w", m, n, err)
			}
			elapsed := time.Since(evalStart)

			if s.observer != nil {
				s.observer(m, n, bits, elapsed)
			}
			table.records = append(table.records, Record{Method: m, NumKeys: n, BitsPerKey: bits})
		}

		s.logger.Debug().
			Int64("num_keys", n).
			Dur("elapsed", time.Since(start)).
			Msg("key count evaluated")
	}

	s.logger.Info().
		Int("records", table.Len()).
		Int("key_counts", len(counts)).
		Dur("duration", time.Since(start)).
		Msg("sweep completed")

	return table, nil
}
