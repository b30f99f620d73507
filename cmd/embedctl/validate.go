package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vectorstack/embed/v1/runpod"
)

var validateCmd = &cobra.Command{
	Use:   "validate [config.json]",
	Short: "Validate a stored client configuration offline",
	Long: `Validate checks a serialized client configuration
({api_key_env_var, endpoint_id, model_name, timeout}) for required fields.

It does not resolve the credential, so it is safe to run against stored
configuration on machines without the API key. Reads from stdin when no
file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var raw []byte
	var err error

	if len(args) == 1 {
		raw, err = os.ReadFile(args[0])
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	var payload runpod.ConfigPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	if err := runpod.ValidateConfig(payload); err != nil {
		return err
	}

	fmt.Println("config valid")
	return nil
}
