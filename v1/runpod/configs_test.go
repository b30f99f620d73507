package runpod

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestConfig_NormalizedPayload(t *testing.T) {
	client, err := NewClient(Config{
		EndpointID: "  ep1  ",
		ModelName:  "m1",
		APIKey:     "secret-key",
		LookupEnv:  noEnv,
	})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	payload := client.Config()

	if payload.EndpointID != "ep1" {
		t.Errorf("endpoint id not trimmed: %q", payload.EndpointID)
	}
	if payload.ModelName != "m1" {
		t.Errorf("unexpected model name %q", payload.ModelName)
	}
	if payload.APIKeyEnvVar != DefaultAPIKeyEnvVar {
		t.Errorf("expected default env var name, got %q", payload.APIKeyEnvVar)
	}
	if payload.TimeoutSeconds != 300 {
		t.Errorf("expected default timeout 300, got %d", payload.TimeoutSeconds)
	}
}

func TestConfig_NeverContainsSecret(t *testing.T) {
	client, err := NewClient(Config{
		EndpointID: "ep1",
		ModelName:  "m1",
		APIKey:     "super-secret-key",
		LookupEnv:  noEnv,
	})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	raw, err := json.Marshal(client.Config())
	if err != nil {
		t.Fatalf("marshaling payload: %v", err)
	}
	if strings.Contains(string(raw), "super-secret-key") {
		t.Errorf("serialized config leaks the API key: %s", raw)
	}
}

func TestConfig_JSONFieldNames(t *testing.T) {
	raw, err := json.Marshal(ConfigPayload{
		APIKeyEnvVar:   "RUNPOD_API_KEY",
		EndpointID:     "ep1",
		ModelName:      "m1",
		TimeoutSeconds: 300,
	})
	if err != nil {
		t.Fatalf("marshaling payload: %v", err)
	}

	for _, field := range []string{`"api_key_env_var"`, `"endpoint_id"`, `"model_name"`, `"timeout"`} {
		if !strings.Contains(string(raw), field) {
			t.Errorf("serialized config missing field %s: %s", field, raw)
		}
	}
}

func TestConfigRoundTrip(t *testing.T) {
	t.Setenv("ROUND_TRIP_KEY", "k")

	original, err := NewClient(Config{
		EndpointID:   "ep1",
		ModelName:    "m1",
		APIKeyEnvVar: "ROUND_TRIP_KEY",
		Timeout:      42 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	rebuilt, err := NewClientFromConfig(original.Config())
	if err != nil {
		t.Fatalf("NewClientFromConfig returned error: %v", err)
	}

	if rebuilt.Config() != original.Config() {
		t.Errorf("round trip changed the config:\n  original: %+v\n  rebuilt:  %+v",
			original.Config(), rebuilt.Config())
	}
}

func TestNewClientFromConfig_SameFailures(t *testing.T) {
	_, err := NewClientFromConfig(ConfigPayload{
		APIKeyEnvVar:   "DEFINITELY_UNSET_VAR_12345",
		EndpointID:     "ep1",
		ModelName:      "m1",
		TimeoutSeconds: 300,
	})
	if !IsMissingCredentialError(err) {
		t.Errorf("expected missing credential error, got %v", err)
	}

	_, err = NewClientFromConfig(ConfigPayload{
		APIKeyEnvVar:   "X",
		ModelName:      "m1",
		TimeoutSeconds: 300,
	})
	if !IsInvalidConfigError(err) {
		t.Errorf("expected invalid config error, got %v", err)
	}
}

func TestValidateConfig(t *testing.T) {
	valid := ConfigPayload{
		APIKeyEnvVar:   "SOME_UNSET_VAR",
		EndpointID:     "ep1",
		ModelName:      "m1",
		TimeoutSeconds: 300,
	}

	// Credential resolvability is irrelevant for offline validation.
	if err := ValidateConfig(valid); err != nil {
		t.Errorf("ValidateConfig rejected a valid payload: %v", err)
	}

	cases := []struct {
		name    string
		payload ConfigPayload
	}{
		{"missing endpoint id", ConfigPayload{APIKeyEnvVar: "V", ModelName: "m1"}},
		{"blank endpoint id", ConfigPayload{APIKeyEnvVar: "V", EndpointID: "  ", ModelName: "m1"}},
		{"missing model name", ConfigPayload{APIKeyEnvVar: "V", EndpointID: "ep1"}},
		{"missing env var name", ConfigPayload{EndpointID: "ep1", ModelName: "m1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateConfig(tc.payload); !IsInvalidConfigError(err) {
				t.Errorf("expected invalid config error, got %v", err)
			}
		})
	}
}

func TestNewConfig_EnvDefaults(t *testing.T) {
	t.Setenv("RUNPOD_ENDPOINT_ID", "env-ep")
	t.Setenv("RUNPOD_MODEL_NAME", "env-model")
	t.Setenv("RUNPOD_HTTP_TIMEOUT_SECONDS", "60")

	cfg := NewConfig()

	if cfg.EndpointID != "env-ep" {
		t.Errorf("unexpected endpoint id %q", cfg.EndpointID)
	}
	if cfg.ModelName != "env-model" {
		t.Errorf("unexpected model name %q", cfg.ModelName)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("unexpected timeout %v", cfg.Timeout)
	}
}
