package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder exposes simulation counters on its own registry.
type Recorder struct {
	registry    *prometheus.Registry
	simulations *prometheus.CounterVec
	rejected    *prometheus.CounterVec
	makespan    *prometheus.HistogramVec
	utilization prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		simulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_simulations_total",
			Help: "Completed simulation runs by policy",
		}, []string{"policy"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_rejected_requests_total",
			Help: "Requests rejected before simulation, by endpoint",
		}, []string{"endpoint"}),
		makespan: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scheduler_makespan_units",
			Help:    "Simulated makespan in time units",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"policy"}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scheduler_last_cpu_utilization_percent",
			Help: "CPU utilization of the most recent run",
		}),
	}
	r.registry.MustRegister(r.simulations, r.rejected, r.makespan, r.utilization)
	return r
}

func (r *Recorder) ObserveRun(policy string, makespan int, utilization float64) {
	r.simulations.WithLabelValues(policy).Inc()
	r.makespan.WithLabelValues(policy).Observe(float64(makespan))
	r.utilization.Set(utilization)
}

func (r *Recorder) ObserveRejected(endpoint string) {
	r.rejected.WithLabelValues(endpoint).Inc()
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
