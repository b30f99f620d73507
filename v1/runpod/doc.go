// Package runpod provides an embedding provider backed by a RunPod
// serverless endpoint.
//
// # Overview
//
// The package exposes a single public entrypoint, Client, which hides the
// RunPod job envelope, HTTP details, and authentication behind the
// embedding.Provider contract.
//
// A client is constructed using:
//
//	client, err := runpod.NewClient(runpod.Config{
//	    EndpointID: "abc123",
//	    ModelName:  "BAAI/bge-small-en-v1.5",
//	})
//
// Once created, the client generates embeddings via:
//
//	vectors, err := client.Generate(ctx, []string{"a", "b", "c"})
//
// The result is positionally aligned with the input: vectors[i] embeds
// texts[i]. An empty input returns an empty result without touching the
// network.
//
// # Credentials
//
// The API key is resolved once, at construction time:
//
//  1. Config.APIKey, when set explicitly.
//  2. The environment variable named by Config.APIKeyEnvVar
//     (default RUNPOD_API_KEY).
//
// Construction fails with ErrMissingCredential when neither yields a key;
// the error message names the variable that was checked. Environment
// access goes through Config.LookupEnv so tests can inject a resolver
// instead of mutating process state.
//
// # Serialized configuration
//
// Client.Config returns the normalized ConfigPayload
// {api_key_env_var, endpoint_id, model_name, timeout} — the secret itself
// is never serialized. NewClientFromConfig rebuilds an equivalent client
// from that payload, and ValidateConfig vets a stored payload offline
// without requiring a resolvable credential.
//
// # Failure model
//
// Generate either returns one vector per input text or fails as a whole:
//
//   - ErrInvalidConfig / ErrMissingCredential at construction time
//   - RemoteCallError for transport failures, timeouts, non-success HTTP
//     statuses, and malformed or incomplete response bodies
//
// Nothing is retried internally. Callers wanting resilience wrap the
// client with their own retry policy.
//
// # Dependency Injection (Fx)
//
// A ready-to-use Fx module is provided:
//
//	app := fx.New(
//	    runpod.FXModule,
//	    fx.Invoke(func(c *runpod.Client) {
//	        // Use embeddings
//	    }),
//	)
//
// which supplies runpod.Config (from environment variables) and
// *runpod.Client, and registers a lifecycle hook that releases HTTP
// resources on shutdown.
//
// # Observability
//
// Config accepts an optional Logger (v1/logger) and an optional
// observability.Observer. When set, the client logs each request outcome
// and reports one OperationContext per Generate call, which the metrics
// package turns into Prometheus series.
package runpod
