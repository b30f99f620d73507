// Package main provides the embedctl CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// verbose switches the structured logger to debug level
var verbose bool

func main() {
	// A missing .env file is fine; flags and the real environment still apply.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "embedctl",
	Short: "Embed texts with a RunPod serverless endpoint",
	Long: `embedctl drives the RunPod embedding client from the command line.

It can embed a batch of texts and print the vectors as JSON, index texts
into a Qdrant collection whose distance matches the provider's similarity
space, and validate stored client configurations offline.

Credentials are resolved from RUNPOD_API_KEY (or the variable named by
--api-key-env-var), optionally loaded from a local .env file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Version = Version
}
