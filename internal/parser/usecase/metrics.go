package usecase

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "task_parser"

// Metrics holds the parser's Prometheus collectors. A nil *Metrics is a no-op.
type Metrics struct {
	parseTotal         *prometheus.CounterVec
	tasksReturned      *prometheus.CounterVec
	tasksDropped       prometheus.Counter
	completionDuration *prometheus.HistogramVec
}

// NewMetrics registers the parser collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		parseTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "parse_total",
			Help:      "Parse requests by the path that produced the result.",
		}, []string{"path"}),
		tasksReturned: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "tasks_returned_total",
			Help:      "Tasks returned to callers by path.",
		}, []string{"path"}),
		tasksDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "tasks_dropped_total",
			Help:      "Completion tasks dropped for an empty name or assignee.",
		}),
		completionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "completion_duration_seconds",
			Help:      "Latency of completion calls by outcome.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}, []string{"outcome"}),
	}
}

func (m *Metrics) parsed(path string, tasks int) {
	if m == nil {
		return
	}
	m.parseTotal.WithLabelValues(path).Inc()
	if tasks > 0 {
		m.tasksReturned.WithLabelValues(path).Add(float64(tasks))
	}
}

func (m *Metrics) taskDropped() {
	if m == nil {
		return
	}
	m.tasksDropped.Inc()
}

func (m *Metrics) completionObserved(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.completionDuration.WithLabelValues(outcome).Observe(d.Seconds())
}
