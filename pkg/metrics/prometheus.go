package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder exposes engine observability through Prometheus.
type Recorder struct {
	evaluations     *prometheus.CounterVec
	trapsDetected   *prometheus.CounterVec
	tierUnavailable *prometheus.CounterVec
	latency         *prometheus.HistogramVec
	lastScore       *prometheus.GaugeVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		evaluations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokenpulse_evaluations_total",
				Help: "Total number of signal evaluations by resulting label",
			},
			[]string{"label"},
		),
		trapsDetected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokenpulse_traps_detected_total",
				Help: "Total number of detected market traps by type",
			},
			[]string{"type"},
		),
		tierUnavailable: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokenpulse_tier_unavailable_total",
				Help: "Evaluations where a tier had insufficient input data",
			},
			[]string{"tier"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tokenpulse_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		lastScore: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tokenpulse_last_score",
				Help: "Last composite score for a token",
			},
			[]string{"token"},
		),
	}
}

// RecordEvaluation records a completed evaluation.
func (r *Recorder) RecordEvaluation(label string) {
	r.evaluations.WithLabelValues(label).Inc()
}

// RecordTrap records a detected trap occurrence.
func (r *Recorder) RecordTrap(trapType string) {
	r.trapsDetected.WithLabelValues(trapType).Inc()
}

// RecordTierUnavailable records a tier that returned no signal.
func (r *Recorder) RecordTierUnavailable(tier string) {
	r.tierUnavailable.WithLabelValues(tier).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordLastScore records the last composite score for a token.
func (r *Recorder) RecordLastScore(token string, score float64) {
	r.lastScore.WithLabelValues(token).Set(score)
}
