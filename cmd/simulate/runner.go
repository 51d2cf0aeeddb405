package main

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AmmannChristian/keybits/internal/config"
	"github.com/AmmannChristian/keybits/internal/metrics"
	"github.com/AmmannChristian/keybits/internal/service"
)

// run loads configuration from the environment, performs one simulation
// and optionally exports metrics. It returns 0 on success and 1 on any
// configuration, estimation or output error. Once configuration has loaded,
// metrics are exported whether or not the simulation succeeds.
func run(stdout, stderr io.Writer) (code int) {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load configuration: %v\n", err)
		return 1
	}

	setupLogging(cfg.LogLevel, stderr)

	logger := log.With().Str("run_id", uuid.New().String()).Logger()
	logger.Info().
		Str("version", version).
		Int("min_exponent", cfg.MinExponent).
		Int("max_exponent", cfg.MaxExponent).
		Str("output_file", cfg.OutputFile).
		Msg("starting bits-per-key simulation")

	if cfg.MetricsTextfile != "" {
		defer func() {
			if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
				logger.Error().Err(err).Str("path", cfg.MetricsTextfile).Msg("writing metrics failed")
				code = 1
				return
			}
			logger.Debug().Str("path", cfg.MetricsTextfile).Msg("metrics written")
		}()
	}

	svc := service.NewService(cfg, logger, stdout)
	if _, err := svc.Run(); err != nil {
		logger.Error().Err(err).Msg("simulation failed")
		return 1
	}

	return 0
}

// setupLogging configures zerolog for structured console output on w.
func setupLogging(level string, w io.Writer) {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
