package runpod

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the RunPod embedding client into Fx.
//
// It provides:
//   - Config          (NewConfig)
//   - *Client         (NewClient)
//   - Lifecycle hook  (RegisterRunpodLifecycle)
var FXModule = fx.Module(
	"runpod",

	fx.Provide(
		NewConfig, // -> Config
		NewClient, // -> *Client
	),

	fx.Invoke(RegisterRunpodLifecycle),
)

// RegisterRunpodLifecycle ensures that the Client releases its HTTP
// resources on application shutdown.
func RegisterRunpodLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
