package observability

import "time"

// OperationContext carries everything an observer needs to record a single
// client operation (metrics, tracing, audit).
type OperationContext struct {
	// Component is the client package reporting the operation, e.g. "runpod".
	Component string

	// Operation is the logical operation name, e.g. "generate".
	Operation string

	// Resource identifies the remote resource, e.g. the endpoint id.
	Resource string

	// SubResource optionally narrows the resource, e.g. the model name.
	SubResource string

	// Duration is the wall-clock time of the operation.
	Duration time.Duration

	// Error is nil on success.
	Error error

	// Size is an operation-specific magnitude, e.g. batch length.
	Size int64

	// Metadata holds additional operation-specific fields.
	Metadata map[string]interface{}
}

// Observer receives operation reports from client packages.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}
