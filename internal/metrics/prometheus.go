// Package metrics defines the Prometheus instruments recorded during a
// simulation run. Being a batch job, the run exports them once to a text
// file suitable for the node exporter textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EvaluationsTotal counts estimator evaluations
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keybits_evaluations_total",
			Help: "Total number of bits-per-key estimator evaluations",
		},
		[]string{"method"},
	)

	// EvaluationSeconds measures the duration of single estimator evaluations
	EvaluationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "keybits_evaluation_duration_seconds",
			Help:    "Duration of a single estimator evaluation in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-7, 10, 10), // 100ns to ~1000s
		},
		[]string{"method"},
	)

	// BitsPerKey holds the latest estimate for each method and key count
	BitsPerKey = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "keybits_bits_per_key",
			Help: "Estimated bits per key",
		},
		[]string{"method", "num_keys"},
	)

	// RunDurationSeconds measures the duration of complete runs
	RunDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "keybits_run_duration_seconds",
			Help:    "Duration of a complete simulation run in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 14), // 10ms to ~80s
		},
	)

	// RecordsTotal counts records handed to the output sink
	RecordsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "keybits_records_total",
			Help: "Total number of comparison records written",
		},
	)

	// ErrorsTotal counts failed runs
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keybits_errors_total",
			Help: "Total number of simulation errors",
		},
		[]string{"stage"}, // sweep or sink
	)
)

// RecordEvaluation records one estimator evaluation
func RecordEvaluation(method, numKeys string, bits, seconds float64) {
	EvaluationsTotal.WithLabelValues(method).Inc()
	EvaluationSeconds.WithLabelValues(method).Observe(seconds)
	BitsPerKey.WithLabelValues(method, numKeys).Set(bits)
}

// RecordRun records the duration of a complete run
func RecordRun(seconds float64) {
	RunDurationSeconds.Observe(seconds)
}

// RecordRecords adds n written records
func RecordRecords(n int) {
	RecordsTotal.Add(float64(n))
}

// RecordError increments the error counter for a stage
func RecordError(stage string) {
	ErrorsTotal.WithLabelValues(stage).Inc()
}

// WriteTextfile writes every registered metric to path in the Prometheus
// text exposition format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
