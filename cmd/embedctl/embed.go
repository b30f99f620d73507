package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagDimsOnly bool

var embedCmd = &cobra.Command{
	Use:   "embed [texts...]",
	Short: "Generate embeddings and print them as JSON",
	Long: `Embed sends the given texts to the configured RunPod endpoint in a
single batch and prints one vector per text, in input order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEmbed,
}

func init() {
	rootCmd.AddCommand(embedCmd)
	registerRunpodFlags(embedCmd)
	embedCmd.Flags().BoolVar(&flagDimsOnly, "dims-only", false, "Print only the vector dimensionality")
}

func runEmbed(cmd *cobra.Command, args []string) error {
	log := newLogger()
	defer log.Zap.Sync()

	client, err := newRunpodClient(log)
	if err != nil {
		return err
	}
	defer client.Close()

	vectors, err := client.Generate(cmd.Context(), args)
	if err != nil {
		return err
	}

	if flagDimsOnly {
		fmt.Printf("%d vectors, %d dimensions\n", len(vectors), len(vectors[0]))
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(vectors)
}
