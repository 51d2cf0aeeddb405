// Package service runs a complete simulation: it sweeps the estimators,
// hands the finished table to the output sinks and records metrics.
package service

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/AmmannChristian/keybits/internal/config"
	"github.com/AmmannChristian/keybits/internal/estimate"
	"github.com/AmmannChristian/keybits/internal/metrics"
	"github.com/AmmannChristian/keybits/internal/sink"
	"github.com/AmmannChristian/keybits/internal/sweep"
)

// SimulationService drives one simulation run per call to Run.
type SimulationService struct {
	cfg    *config.Config
	logger zerolog.Logger
	stdout io.Writer

	// sweepOpts are applied after the options derived from cfg.
	sweepOpts []sweep.Option
}

// NewService creates a SimulationService for cfg. Rendered tables, if
// enabled, go to stdout.
func NewService(cfg *config.Config, logger zerolog.Logger, stdout io.Writer) *SimulationService {
	return &SimulationService{
		cfg:    cfg,
		logger: logger,
		stdout: stdout,
	}
}

// Run evaluates the sweep and writes its table. Nothing is written unless
// the whole sweep succeeds.
func (s *SimulationService) Run() (*sweep.Table, error) {
	if s.cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	start := time.Now()
	defer func() {
		metrics.RecordRun(time.Since(start).Seconds())
	}()

	opts := []sweep.Option{
		sweep.WithExponents(s.cfg.MinExponent, s.cfg.MaxExponent),
		sweep.WithLogger(s.logger),
		sweep.WithObserver(observe),
	}
	sw := sweep.New(append(opts, s.sweepOpts...)...)

	table, err := sw.Run()
	if err != nil {
		metrics.RecordError("sweep")
		return nil, fmt.Errorf("sweep failed: %w", err)
	}

	if err := sink.WriteFile(s.cfg.OutputFile, table); err != nil {
		metrics.RecordError("sink")
		return nil, fmt.Errorf("writing %s failed: %w", s.cfg.OutputFile, err)
	}
	metrics.RecordRecords(table.Len())

	s.logger.Info().
		Str("output_file", s.cfg.OutputFile).
		Int("records", table.Len()).
		Msg("results written")

	if s.cfg.PrintTable && s.stdout != nil {
		if err := sink.Render(s.stdout, table); err != nil {
			metrics.RecordError("sink")
			return nil, fmt.Errorf("rendering table failed: %w", err)
		}
	}

	return table, nil
}

func observe(m estimate.Method, n int64, bits float64, elapsed time.Duration) {
	metrics.RecordEvaluation(m.String(), strconv.FormatInt(n, 10), bits, elapsed.Seconds())
}
