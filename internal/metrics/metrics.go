package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mcoot/teamalloc/internal/model"
)

// Recorder receives allocation run outcomes
type Recorder interface {
	// RecordRun records one finished allocation
	RecordRun(status model.AllocationStatus, orphaned, violations int, duration time.Duration)
	// RecordFailure records an allocation rejected before completing
	RecordFailure(reason string)
}

// Nop discards everything
type Nop struct{}

var _ Recorder = Nop{}

func (Nop) RecordRun(model.AllocationStatus, int, int, time.Duration) {}

func (Nop) RecordFailure(string) {}

// Prometheus records allocation metrics on a registry
type Prometheus struct {
	runs       *prometheus.CounterVec
	failures   *prometheus.CounterVec
	orphaned   prometheus.Counter
	violations prometheus.Counter
	duration   prometheus.Histogram
}

var _ Recorder = (*Prometheus)(nil)

// NewPrometheus creates the collectors and registers them on reg
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	p := &Prometheus{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "teamalloc",
			Name:      "runs_total",
			Help:      "Allocation runs by outcome status (complete, partial).",
		}, []string{"status"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "teamalloc",
			Name:      "run_failures_total",
			Help:      "Allocation runs rejected before completion, by reason.",
		}, []string{"reason"}),
		orphaned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "teamalloc",
			Name:      "orphaned_pairs_total",
			Help:      "Pairs that could not be seated on a common team.",
		}),
		violations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "teamalloc",
			Name:      "validation_violations_total",
			Help:      "Invariant violations reported by the validator.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "teamalloc",
			Name:      "run_duration_seconds",
			Help:      "Time spent allocating, validating and reporting one run.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms .. ~2s
		}),
	}

	reg.MustRegister(p.runs, p.failures, p.orphaned, p.violations, p.duration)
	return p
}

func (p *Prometheus) RecordRun(status model.AllocationStatus, orphaned, violations int, duration time.Duration) {
	p.runs.WithLabelValues(string(status)).Inc()
	p.orphaned.Add(float64(orphaned))
	p.violations.Add(float64(violations))
	p.duration.Observe(duration.Seconds())
}

func (p *Prometheus) RecordFailure(reason string) {
	p.failures.WithLabelValues(reason).Inc()
}
