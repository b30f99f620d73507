// Package metrics exposes Prometheus metrics for the embedding clients in
// this module.
//
// # Overview
//
// NewMetrics builds an isolated Prometheus registry, registers the built-in
// embedding operation metrics, and wraps everything with a constant
// service label. The resulting *Metrics also implements
// observability.Observer, so it can be set directly as the Observer on a
// client Config:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "embedctl"})
//	client, err := runpod.NewClient(runpod.Config{
//	    EndpointID: "abc123",
//	    ModelName:  "BAAI/bge-small-en-v1.5",
//	    Observer:   m,
//	})
//
// # Built-in metrics
//
//	embedding_operations_total{component,operation,status}
//	embedding_operation_duration_seconds{component,operation}
//	embedding_batch_size{component}
//
// Additional metrics can be registered through CreateCounter,
// CreateHistogram, and CreateGauge.
//
// # Serving
//
// Metrics are served at /metrics by the embedded HTTP server, started by
// the Fx lifecycle hook or manually via m.Server.ListenAndServe().
package metrics
