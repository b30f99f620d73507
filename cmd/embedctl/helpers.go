package main

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/vectorstack/embed/v1/logger"
	"github.com/vectorstack/embed/v1/metrics"
	"github.com/vectorstack/embed/v1/runpod"
)

// Shared RunPod flags, registered on every command that talks to the endpoint.
var (
	flagEndpointID   string
	flagModel        string
	flagAPIKeyEnvVar string
	flagTimeout      int
	flagBaseURL      string
	flagMetricsAddr  string
)

func registerRunpodFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagEndpointID, "endpoint-id", "", "RunPod endpoint id (default $RUNPOD_ENDPOINT_ID)")
	cmd.Flags().StringVar(&flagModel, "model", "", "Embedding model name (default $RUNPOD_MODEL_NAME)")
	cmd.Flags().StringVar(&flagAPIKeyEnvVar, "api-key-env-var", "", "Environment variable holding the API key (default RUNPOD_API_KEY)")
	cmd.Flags().IntVar(&flagTimeout, "timeout", 0, "Request timeout in seconds (default 300)")
	cmd.Flags().StringVar(&flagBaseURL, "base-url", "", "RunPod API root override (default $RUNPOD_BASE_URL)")
	cmd.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "Expose Prometheus metrics on this address (e.g. :9090)")
}

// newLogger builds the CLI's structured logger; --verbose lowers the level
// to debug so per-request fields become visible.
func newLogger() *logger.Logger {
	level := logger.Info
	if verbose {
		level = logger.Debug
	}
	return logger.NewLoggerClient(logger.Config{
		Level:       level,
		ServiceName: "embedctl",
	})
}

// newRunpodClient merges environment defaults with command-line flags and
// constructs the embedding client.
func newRunpodClient(log *logger.Logger) (*runpod.Client, error) {
	cfg := runpod.NewConfig()
	cfg.Logger = log

	if flagMetricsAddr != "" {
		m := metrics.NewMetrics(metrics.Config{
			Address:                 flagMetricsAddr,
			ServiceName:             "embedctl",
			EnableDefaultCollectors: true,
		})
		go func() {
			if err := m.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("metrics server stopped", err)
			}
		}()
		cfg.Observer = m
	}

	if flagEndpointID != "" {
		cfg.EndpointID = flagEndpointID
	}
	if flagModel != "" {
		cfg.ModelName = flagModel
	}
	if flagAPIKeyEnvVar != "" {
		cfg.APIKeyEnvVar = flagAPIKeyEnvVar
	}
	if flagTimeout > 0 {
		cfg.Timeout = time.Duration(flagTimeout) * time.Second
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}

	return runpod.NewClient(cfg)
}
