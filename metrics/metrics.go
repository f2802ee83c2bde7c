package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for OperationsTotal
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics holds the Prometheus collectors for cipher operations
type Metrics struct {
	OperationsTotal    *prometheus.CounterVec
	OperationDuration  *prometheus.HistogramVec
	AuditWriteFailures prometheus.Counter
}

// New creates the collectors and registers them on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		OperationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "securelog_operations_total",
			Help: "Cipher operations by kind and outcome",
		}, []string{"operation", "outcome"}),

		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "securelog_operation_duration_seconds",
			Help:    "Duration of cipher operations including the audit write",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),

		AuditWriteFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "securelog_audit_write_failures_total",
			Help: "Audit records that could not be committed",
		}),
	}
}

// ObserveOperation records the outcome and duration of one operation
func (m *Metrics) ObserveOperation(operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.OperationsTotal.WithLabelValues(operation, outcome).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrementAuditWriteFailures counts an audit write that failed
func (m *Metrics) IncrementAuditWriteFailures() {
	if m != nil {
		m.AuditWriteFailures.Inc()
	}
}
