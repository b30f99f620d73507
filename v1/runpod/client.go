package runpod

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/vectorstack/embed/v1/embedding"
)

// Client calls a RunPod serverless embedding endpoint and adapts its
// responses into the vector format expected by embedding.Provider.
//
// A Client is immutable after construction and safe for concurrent use;
// concurrent Generate calls are independent round trips.
type Client struct {
	cfg        Config
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ embedding.Provider = (*Client)(nil)

// NewClient constructs a Client from Config.
//
// The API key is resolved at construction time: an explicit cfg.APIKey
// wins, otherwise the environment variable named by cfg.APIKeyEnvVar is
// consulted through cfg.LookupEnv. Construction fails with
// ErrMissingCredential when neither yields a key, and with
// ErrInvalidConfig when the endpoint id or model name is empty or blank.
func NewClient(cfg Config) (*Client, error) {
	cfg.EndpointID = strings.TrimSpace(cfg.EndpointID)
	cfg.ModelName = strings.TrimSpace(cfg.ModelName)

	if cfg.EndpointID == "" {
		return nil, fmt.Errorf("%w: endpoint id is required", ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name is required", ErrInvalidConfig)
	}
	if cfg.APIKeyEnvVar == "" {
		cfg.APIKeyEnvVar = DefaultAPIKeyEnvVar
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	lookup := cfg.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	key := cfg.APIKey
	if key == "" {
		if v, ok := lookup(cfg.APIKeyEnvVar); ok {
			key = v
		}
	}
	if key == "" {
		return nil, fmt.Errorf("%w: no explicit key given and %s is not set", ErrMissingCredential, cfg.APIKeyEnvVar)
	}

	return &Client{
		cfg:        cfg,
		apiKey:     key,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// NewClientFromConfig constructs a Client from its serialized
// configuration. It applies the same validation and credential
// resolution as NewClient, so a payload produced by Client.Config
// round-trips as long as the same credential is resolvable.
func NewClientFromConfig(payload ConfigPayload) (*Client, error) {
	return NewClient(Config{
		EndpointID:   payload.EndpointID,
		ModelName:    payload.ModelName,
		APIKeyEnvVar: payload.APIKeyEnvVar,
		Timeout:      time.Duration(payload.TimeoutSeconds) * time.Second,
	})
}

// ValidateConfig checks a stored configuration for field presence without
// resolving a credential. Use it to vet persisted payloads before
// attempting construction.
func ValidateConfig(payload ConfigPayload) error {
	if strings.TrimSpace(payload.EndpointID) == "" {
		return fmt.Errorf("%w: endpoint_id is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(payload.ModelName) == "" {
		return fmt.Errorf("%w: model_name is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(payload.APIKeyEnvVar) == "" {
		return fmt.Errorf("%w: api_key_env_var is required", ErrInvalidConfig)
	}
	return nil
}

// Config returns the normalized serialized configuration, including the
// resolved environment variable name but never the key itself.
func (c *Client) Config() ConfigPayload {
	return ConfigPayload{
		APIKeyEnvVar:   c.cfg.APIKeyEnvVar,
		EndpointID:     c.cfg.EndpointID,
		ModelName:      c.cfg.ModelName,
		TimeoutSeconds: int(c.cfg.Timeout / time.Second),
	}
}

// Generate computes one embedding per input text, preserving input order.
//
// An empty input returns an empty result without any network call.
// Otherwise exactly one request is issued for the whole batch, bounded by
// the configured timeout. There is no internal splitting, no retry, and
// no partial success: the call returns len(texts) vectors or an error.
func (c *Client) Generate(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	start := time.Now()
	vectors, err := c.generate(ctx, texts)
	duration := time.Since(start)

	c.observeOperation("generate", duration, err, int64(len(texts)))

	if err != nil {
		if c.cfg.Logger != nil {
			c.cfg.Logger.Error("embedding request failed", err, map[string]interface{}{
				"endpoint_id": c.cfg.EndpointID,
				"model":       c.cfg.ModelName,
				"batch_size":  len(texts),
			})
		}
		return nil, err
	}

	if c.cfg.Logger != nil {
		c.cfg.Logger.Debug("embedding request completed", nil, map[string]interface{}{
			"endpoint_id": c.cfg.EndpointID,
			"model":       c.cfg.ModelName,
			"batch_size":  len(texts),
			"duration_ms": duration.Milliseconds(),
			"dimensions":  len(vectors[0]),
		})
	}

	return vectors, nil
}

func (c *Client) generate(ctx context.Context, texts []string) ([][]float32, error) {
	url := fmt.Sprintf("%s/v2/%s/runsync", c.baseURL, c.cfg.EndpointID)

	var parsed runsyncResponse
	req := runsyncRequest{Input: runsyncInput{Model: c.cfg.ModelName, Input: texts}}
	if err := c.postJSON(ctx, url, req, &parsed); err != nil {
		return nil, err
	}

	if parsed.Status != "" && parsed.Status != jobCompleted {
		msg := fmt.Sprintf("job finished with status %s", parsed.Status)
		if parsed.Error != "" {
			msg += ": " + parsed.Error
		}
		return nil, &RemoteCallError{Message: msg}
	}
	if len(parsed.Output.Data) != len(texts) {
		return nil, &RemoteCallError{
			Message: fmt.Sprintf("expected %d embeddings, got %d", len(texts), len(parsed.Output.Data)),
		}
	}

	out := make([][]float32, len(texts))
	for i, d := range parsed.Output.Data {
		idx := i
		if d.Index != nil {
			idx = *d.Index
		}
		if idx < 0 || idx >= len(texts) {
			return nil, &RemoteCallError{Message: fmt.Sprintf("embedding index %d out of range", idx)}
		}
		if len(d.Embedding) == 0 {
			return nil, &RemoteCallError{Message: fmt.Sprintf("empty embedding for input %d", idx)}
		}
		if out[idx] != nil {
			return nil, &RemoteCallError{Message: fmt.Sprintf("duplicate embedding index %d", idx)}
		}
		out[idx] = d.Embedding
	}

	return out, nil
}

// DefaultSpace returns the metric RunPod embedding models are tuned for.
func (c *Client) DefaultSpace() embedding.Space {
	return embedding.SpaceCosine
}

// SupportedSpaces returns every metric valid for the generated vectors.
func (c *Client) SupportedSpaces() []embedding.Space {
	return embedding.Spaces()
}

// Close releases idle connections held by the underlying HTTP client.
// The Client must not be used after Close.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
