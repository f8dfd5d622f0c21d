package observability

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/signalsfoundry/radar-workbench/rf"
)

// Evaluation outcome labels.
const (
	OutcomeOK           = "ok"
	OutcomeDomainError  = "domain_error"
	OutcomeMissingField = "missing_field"
	OutcomeError        = "error"
)

// Collector bundles Prometheus metrics for the calculator surface and
// provides an HTTP handler to expose them.
type Collector struct {
	gatherer prometheus.Gatherer

	Evaluations *prometheus.CounterVec
	Durations   *prometheus.HistogramVec
	Calculators prometheus.Gauge
}

// NewCollector registers calculator Prometheus metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	evaluations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rf_evaluations_total",
		Help: "Total calculator evaluations, labeled by calculator name and outcome.",
	}, []string{"calculator", "outcome"})
	evaluations, err := registerCounterVec(reg, evaluations, "rf_evaluations_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rf_evaluation_duration_seconds",
		Help:    "Calculator evaluation latency in seconds.",
		Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
	}, []string{"calculator"})
	durations, err = registerHistogramVec(reg, durations, "rf_evaluation_duration_seconds")
	if err != nil {
		return nil, err
	}

	calculators, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rf_registered_calculators",
		Help: "Number of calculators in the dispatch registry.",
	}), "rf_registered_calculators")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:    gatherer,
		Evaluations: evaluations,
		Durations:   durations,
		Calculators: calculators,
	}, nil
}

// ObserveEvaluation records one calculator evaluation. The outcome label is
// derived from the error taxonomy of the rf package.
func (c *Collector) ObserveEvaluation(calculator string, err error, elapsed time.Duration) {
	if c == nil {
		return
	}
	if c.Evaluations != nil {
		c.Evaluations.WithLabelValues(calculator, outcomeLabel(err)).Inc()
	}
	if c.Durations != nil {
		c.Durations.WithLabelValues(calculator).Observe(elapsed.Seconds())
	}
}

// SetCalculatorCount drives the registry-size gauge.
func (c *Collector) SetCalculatorCount(n int) {
	if c == nil || c.Calculators == nil {
		return
	}
	c.Calculators.Set(float64(n))
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, rf.ErrDomain):
		return OutcomeDomainError
	case errors.Is(err, rf.ErrMissingField):
		return OutcomeMissingField
	default:
		return OutcomeError
	}
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
