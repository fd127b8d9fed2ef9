// Package metrics records generator operations in a Prometheus registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Recorder owns a private registry. A nil *Recorder records nothing.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	machines   *prometheus.CounterVec
}

// New creates a Recorder with its collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "llfsmgen_operations_total",
				Help: "Total number of generator operations by outcome",
			},
			[]string{"operation", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "llfsmgen_operation_duration_seconds",
				Help:    "Duration of generator operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		machines: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "llfsmgen_arrangement_machines_total",
				Help: "Machines processed while building arrangements",
			},
			[]string{"result"},
		),
	}
	r.registry.MustRegister(r.operations, r.duration, r.machines)
	return r
}

// Observe records one finished operation.
func (r *Recorder) Observe(operation string, started time.Time, err error) {
	if r == nil {
		return
	}
	r.operations.WithLabelValues(operation, result(err)).Inc()
	r.duration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// MachineProcessed records one machine of an arrangement build.
func (r *Recorder) MachineProcessed(err error) {
	if r == nil {
		return
	}
	r.machines.WithLabelValues(result(err)).Inc()
}

// Registry exposes the underlying registry, mostly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.Registry(), promhttp.HandlerOpts{})
}

// WriteTextfile writes the registry for the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.Registry())
}

func result(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}
