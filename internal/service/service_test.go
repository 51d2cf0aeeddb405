package service

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmmannChristian/keybits/internal/config"
	"github.com/AmmannChristian/keybits/internal/estimate"
	"github.com/AmmannChristian/keybits/internal/metrics"
	"github.com/AmmannChristian/keybits/internal/sweep"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		OutputFile:  filepath.Join(t.TempDir(), "simulate.csv"),
		MinExponent: 2,
		MaxExponent: 4,
		LogLevel:    "info",
	}
}

func TestNewService(t *testing.T) {
	cfg := testConfig(t)
	svc := NewService(cfg, zerolog.Nop(), nil)

	assert.NotNil(t, svc)
	assert.Same(t, cfg, svc.cfg)
}

func TestService_Run_WritesCSV(t *testing.T) {
	cfg := testConfig(t)
	svc := NewService(cfg, zerolog.Nop(), nil)

	table, err := svc.Run()
	require.NoError(t, err)
	assert.Equal(t, 12, table.Len())

	raw, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "method,num_keys,bits_per_key", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "optimal,100,"))
	assert.True(t, strings.HasPrefix(lines[2], "chia,100,"))
	assert.True(t, strings.HasPrefix(lines[3], "permutation,100,"))
	assert.Equal(t, "bitpacking,100,6.643856189774724", lines[4])
	assert.True(t, strings.HasPrefix(lines[12], "bitpacking,10000,"))
}

func TestService_Run_RecordsMetrics(t *testing.T) {
	metrics.EvaluationsTotal.Reset()
	before := testutil.ToFloat64(metrics.RecordsTotal)

	_, err := NewService(testConfig(t), zerolog.Nop(), nil).Run()
	require.NoError(t, err)

	for _, m := range []string{"optimal", "chia", "permutation", "bitpacking"} {
		assert.Equal(t, 3.0, testutil.ToFloat64(metrics.EvaluationsTotal.WithLabelValues(m)), m)
	}
	assert.Equal(t, before+12, testutil.ToFloat64(metrics.RecordsTotal))
	assert.Equal(t, 6.643856189774724, testutil.ToFloat64(metrics.BitsPerKey.WithLabelValues("bitpacking", "100")))
}

func TestService_Run_PrintTable(t *testing.T) {
	cfg := testConfig(t)
	cfg.PrintTable = true

	var out bytes.Buffer
	_, err := NewService(cfg, zerolog.Nop(), &out).Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "bits_per_key")
	assert.Contains(t, out.String(), "permutation")
}

func TestService_Run_NoTableByDefault(t *testing.T) {
	var out bytes.Buffer
	_, err := NewService(testConfig(t), zerolog.Nop(), &out).Run()
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestService_Run_ValidationErrors(t *testing.T) {
	_, err := NewService(nil, zerolog.Nop(), nil).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be nil")

	cfg := testConfig(t)
	cfg.MinExponent = 5
	cfg.MaxExponent = 3
	_, err = NewService(cfg, zerolog.Nop(), nil).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")

	_, statErr := os.Stat(cfg.OutputFile)
	assert.True(t, os.IsNotExist(statErr))
}

func TestService_Run_SinkError(t *testing.T) {
	metrics.ErrorsTotal.Reset()

	cfg := testConfig(t)
	cfg.OutputFile = filepath.Join(t.TempDir(), "missing", "simulate.csv")

	_, err := NewService(cfg, zerolog.Nop(), nil).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ErrorsTotal.WithLabelValues("sink")))
}

func TestService_Run_DomainErrorWritesNothing(t *testing.T) {
	metrics.ErrorsTotal.Reset()

	cfg := testConfig(t)
	svc := NewService(cfg, zerolog.Nop(), nil)
	svc.sweepOpts = []sweep.Option{
		sweep.WithEvaluator(func(m estimate.Method, n int64) (float64, error) {
			if m == estimate.Chia && n == 1000 {
				return m.Estimate(0)
			}
			return m.Estimate(n)
		}),
	}

	table, err := svc.Run()
	require.Error(t, err)
	assert.Nil(t, table)
	assert.True(t, errors.Is(err, estimate.ErrDomain))
	assert.Contains(t, err.Error(), "sweep failed")

	_, statErr := os.Stat(cfg.OutputFile)
	assert.True(t, os.IsNotExist(statErr))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ErrorsTotal.WithLabelValues("sweep")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.ErrorsTotal.WithLabelValues("sink")))
}
