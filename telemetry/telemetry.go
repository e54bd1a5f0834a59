package telemetry

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels recorded for dispatch calls.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Collector captures telemetry events emitted by the dispatch layer.
//
// Implementations may forward metrics to Prometheus, loggers or other
// monitoring systems. They should be inexpensive to call because hooks are
// executed inline with every call into the host application.
type Collector interface {
	ObserveCall(member, outcome string, elapsed time.Duration)
	IncJobStep(job, kind, outcome string)
}

type noopCollector struct{}

// Noop returns a collector that discards all metrics.
func Noop() Collector {
	return noopCollector{}
}

func (noopCollector) ObserveCall(string, string, time.Duration) {}
func (noopCollector) IncJobStep(string, string, string) {}

// PrometheusCollector exposes dispatch counters via Prometheus.
type PrometheusCollector struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	steps    *prometheus.CounterVec
}

var (
	callCounter      *prometheus.CounterVec
	callCounterLock  sync.Mutex
	durationHist     *prometheus.HistogramVec
	durationHistLock sync.Mutex
	stepCounter      *prometheus.CounterVec
	stepCounterLock  sync.Mutex
)

// NewPrometheusCollector registers the required metrics with the provided registerer.
func NewPrometheusCollector(reg prometheus.Registerer) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	callCounterLock.Lock()
	if callCounter == nil {
		counter := prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wellcad_dispatch_calls_total",
			Help: "Number of calls forwarded to the host automation interface per member and outcome.",
		}, []string{"member", "outcome"})
		existing, err := register(reg, counter)
		if err != nil {
			callCounterLock.Unlock()
			return nil, err
		}
		callCounter = existing.(*prometheus.CounterVec)
	}
	callCounterLock.Unlock()

	durationHistLock.Lock()
	if durationHist == nil {
		hist := prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wellcad_dispatch_call_duration_seconds",
			Help:    "Time spent waiting for the host application per member, including dialogs.",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120, 600},
		}, []string{"member"})
		existing, err := register(reg, hist)
		if err != nil {
			durationHistLock.Unlock()
			return nil, err
		}
		durationHist = existing.(*prometheus.HistogramVec)
	}
	durationHistLock.Unlock()

	stepCounterLock.Lock()
	if stepCounter == nil {
		counter := prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wellcad_job_steps_total",
			Help: "Number of executed job steps per job, step kind and outcome.",
		}, []string{"job", "kind", "outcome"})
		existing, err := register(reg, counter)
		if err != nil {
			stepCounterLock.Unlock()
			return nil, err
		}
		stepCounter = existing.(*prometheus.CounterVec)
	}
	stepCounterLock.Unlock()

	return &PrometheusCollector{
		calls:    callCounter,
		duration: durationHist,
		steps:    stepCounter,
	}, nil
}

// register adds c to reg, returning the already registered collector of the
// same description when one exists.
func register(reg prometheus.Registerer, c prometheus.Collector) (prometheus.Collector, error) {
	if err := reg.Register(c); err != nil {
		already, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, err
		}
		switch c.(type) {
		case *prometheus.CounterVec:
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		case *prometheus.HistogramVec:
			if existing, ok := already.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

// ObserveCall records one dispatch call and its duration.
func (p *PrometheusCollector) ObserveCall(member, outcome string, elapsed time.Duration) {
	if p == nil {
		return
	}
	if p.calls != nil {
		p.calls.WithLabelValues(member, outcome).Inc()
	}
	if p.duration != nil {
		p.duration.WithLabelValues(member).Observe(elapsed.Seconds())
	}
}

// IncJobStep counts an executed job step.
func (p *PrometheusCollector) IncJobStep(job, kind, outcome string) {
	if p == nil || p.steps == nil {
		return
	}
	p.steps.WithLabelValues(job, kind, outcome).Inc()
}
