package runpod

import (
	"os"
	"strconv"
	"time"

	"github.com/vectorstack/embed/v1/observability"
)

// Default values for configuration
const (
	// DefaultAPIKeyEnvVar is the environment variable consulted for the
	// API key when no explicit key is configured.
	DefaultAPIKeyEnvVar = "RUNPOD_API_KEY"

	// DefaultBaseURL is the public RunPod serverless API.
	DefaultBaseURL = "https://api.runpod.ai"

	// DefaultTimeout bounds a single embedding request, including the
	// time a serverless worker may need to cold-start.
	DefaultTimeout = 300 * time.Second
)

// Config holds connection and behavior settings for the RunPod embedding
// client.
//
// Example (programmatic):
//
//	cfg := runpod.Config{
//	    EndpointID: "abc123",
//	    ModelName:  "BAAI/bge-small-en-v1.5",
//	}
//	client, err := runpod.NewClient(cfg)
type Config struct {
	// EndpointID is the RunPod identifier of the deployed serverless
	// endpoint. Required.
	EndpointID string `yaml:"endpoint_id" env:"RUNPOD_ENDPOINT_ID"`

	// ModelName is the embedding model served by the endpoint. Required.
	ModelName string `yaml:"model_name" env:"RUNPOD_MODEL_NAME"`

	// APIKey is an explicit API key. When empty, the key is read from
	// the environment variable named by APIKeyEnvVar.
	APIKey string `yaml:"api_key"`

	// APIKeyEnvVar names the environment variable holding the API key.
	// Defaults to RUNPOD_API_KEY.
	APIKeyEnvVar string `yaml:"api_key_env_var" env:"RUNPOD_API_KEY_ENV_VAR"`

	// Timeout is the maximum duration of one embedding request.
	// Defaults to 300 seconds.
	Timeout time.Duration `yaml:"timeout"`

	// BaseURL overrides the RunPod API root. Intended for tests and
	// self-hosted gateways; not part of the serialized configuration.
	BaseURL string `yaml:"base_url" env:"RUNPOD_BASE_URL"`

	// LookupEnv resolves environment variables during credential
	// resolution. Defaults to os.LookupEnv. Inject a stub in tests to
	// avoid mutating process-wide state.
	LookupEnv func(string) (string, bool)

	// Logger is an optional logger from the v1/logger package.
	Logger Logger

	// Observer receives one operation report per Generate call.
	Observer observability.Observer
}

// Logger is an interface that matches v1/logger.Logger.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	timeout := DefaultTimeout
	if v := os.Getenv("RUNPOD_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}

	return Config{
		EndpointID:   os.Getenv("RUNPOD_ENDPOINT_ID"),
		ModelName:    os.Getenv("RUNPOD_MODEL_NAME"),
		APIKeyEnvVar: os.Getenv("RUNPOD_API_KEY_ENV_VAR"),
		BaseURL:      os.Getenv("RUNPOD_BASE_URL"),
		Timeout:      timeout,
	}
}

// ConfigPayload is the serialized configuration shape exposed by
// Client.Config and accepted by NewClientFromConfig. It carries the
// environment variable name, never the key itself.
type ConfigPayload struct {
	APIKeyEnvVar   string `json:"api_key_env_var"`
	EndpointID     string `json:"endpoint_id"`
	ModelName      string `json:"model_name"`
	TimeoutSeconds int    `json:"timeout"`
}
