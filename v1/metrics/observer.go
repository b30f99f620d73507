package metrics

import (
	"github.com/vectorstack/embed/v1/observability"
)

// ObserveOperation implements observability.Observer.
//
// Each reported operation becomes:
//   - one increment of embedding_operations_total{component,operation,status}
//   - one observation of embedding_operation_duration_seconds{component,operation}
//   - one observation of embedding_batch_size{component} when Size > 0
func (m *Metrics) ObserveOperation(op observability.OperationContext) {
	if m == nil {
		return
	}

	status := "success"
	if op.Error != nil {
		status = "error"
	}

	m.operationsTotal.WithLabelValues(op.Component, op.Operation, status).Inc()
	m.operationDuration.WithLabelValues(op.Component, op.Operation).Observe(op.Duration.Seconds())

	if op.Size > 0 {
		m.batchSize.WithLabelValues(op.Component).Observe(float64(op.Size))
	}
}
