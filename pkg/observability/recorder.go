package observability

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Recorder tracks evaluations, failures and generated sequence elements.
type Recorder struct {
	registry    *prometheus.Registry
	evaluations *prometheus.CounterVec
	failures    *prometheus.CounterVec
	elements    prometheus.Counter
}

// NewRecorder creates a Recorder with its collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "drills_evaluations_total",
				Help: "Total number of exercise evaluations",
			},
			[]string{"exercise"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "drills_failures_total",
				Help: "Total number of exercise evaluations rejected with an error",
			},
			[]string{"exercise"},
		),
		elements: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "drills_sequence_elements_total",
				Help: "Total number of elements pulled from generated sequences",
			},
		),
	}
	r.registry.MustRegister(r.evaluations, r.failures, r.elements)
	return r
}

// Observe records one evaluation of exercise, counting it as a failure when err is non-nil.
// A nil Recorder is a no-op.
func (r *Recorder) Observe(exercise string, err error) {
	if r == nil {
		return
	}
	r.evaluations.WithLabelValues(exercise).Inc()
	if err != nil {
		r.failures.WithLabelValues(exercise).Inc()
	}
}

// AddElements records n elements pulled from a sequence.
func (r *Recorder) AddElements(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.elements.Add(float64(n))
}

// Registry exposes the underlying registry (e.g. for testutil assertions).
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Evaluations returns the evaluations counter for exercise.
func (r *Recorder) Evaluations(exercise string) prometheus.Counter {
	return r.evaluations.WithLabelValues(exercise)
}

// Failures returns the failures counter for exercise.
func (r *Recorder) Failures(exercise string) prometheus.Counter {
	return r.failures.WithLabelValues(exercise)
}

// Elements returns the sequence elements counter.
func (r *Recorder) Elements() prometheus.Counter {
	return r.elements
}

// Write dumps all collected metrics in the Prometheus text exposition format.
func (r *Recorder) Write(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
