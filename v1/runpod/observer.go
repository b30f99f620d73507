package runpod

import (
	"time"

	"github.com/vectorstack/embed/v1/observability"
)

// observeOperation notifies the observer about an operation if one is configured.
// This is used internally to track embedding operations for metrics and tracing.
//
// Notes:
//   - resource: endpoint id
//   - subResource: model name
//   - size: number of texts in the batch
func (c *Client) observeOperation(operation string, duration time.Duration, err error, size int64) {
	if c == nil || c.cfg.Observer == nil {
		return
	}

	c.cfg.Observer.ObserveOperation(observability.OperationContext{
		Component:   "runpod",
		Operation:   operation,
		Resource:    c.cfg.EndpointID,
		SubResource: c.cfg.ModelName,
		Duration:    duration,
		Error:       err,
		Size:        size,
	})
}
