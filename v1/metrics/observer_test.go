package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vectorstack/embed/v1/observability"
)

func newTestMetrics() *Metrics {
	return NewMetrics(Config{
		Address:                 ":0",
		ServiceName:             "test",
		EnableDefaultCollectors: false,
	})
}

func TestObserveOperation_Success(t *testing.T) {
	m := newTestMetrics()

	m.ObserveOperation(observability.OperationContext{
		Component: "runpod",
		Operation: "generate",
		Resource:  "ep1",
		Duration:  120 * time.Millisecond,
		Size:      8,
	})

	got := testutil.ToFloat64(m.operationsTotal.WithLabelValues("runpod", "generate", "success"))
	if got != 1 {
		t.Errorf("expected success counter 1, got %v", got)
	}
}

func TestObserveOperation_Error(t *testing.T) {
	m := newTestMetrics()

	m.ObserveOperation(observability.OperationContext{
		Component: "runpod",
		Operation: "generate",
		Duration:  5 * time.Millisecond,
		Error:     errors.New("http 502"),
		Size:      2,
	})

	got := testutil.ToFloat64(m.operationsTotal.WithLabelValues("runpod", "generate", "error"))
	if got != 1 {
		t.Errorf("expected error counter 1, got %v", got)
	}
	if success := testutil.ToFloat64(m.operationsTotal.WithLabelValues("runpod", "generate", "success")); success != 0 {
		t.Errorf("expected success counter 0, got %v", success)
	}
}

func TestObserveOperation_NilReceiverNoPanic(t *testing.T) {
	var m *Metrics

	// Should not panic.
	m.ObserveOperation(observability.OperationContext{Component: "runpod", Operation: "generate"})
}

func TestCreateCustomMetrics(t *testing.T) {
	m := newTestMetrics()

	counter := m.CreateCounter("custom_total", "A custom counter", []string{"kind"})
	counter.WithLabelValues("a").Inc()

	if got := testutil.ToFloat64(counter.WithLabelValues("a")); got != 1 {
		t.Errorf("expected custom counter 1, got %v", got)
	}
}
