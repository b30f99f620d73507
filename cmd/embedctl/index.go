package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vectorstack/embed/v1/qdrant"
	"github.com/vectorstack/embed/v1/runpod"
)

var (
	flagCollection  string
	flagBatchSize   int
	flagConcurrency int
	flagQdrantHost  string
	flagQdrantPort  int
)

var indexCmd = &cobra.Command{
	Use:   "index [texts...]",
	Short: "Embed texts and upsert them into a Qdrant collection",
	Long: `Index embeds the given texts and stores the vectors in Qdrant.

The embedding client sends one request per batch; chunking and concurrency
happen here, on the caller side. The target collection is created on first
use with the distance function matching the provider's default space.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
	registerRunpodFlags(indexCmd)
	indexCmd.Flags().StringVar(&flagCollection, "collection", "documents", "Qdrant collection name")
	indexCmd.Flags().IntVar(&flagBatchSize, "batch-size", 32, "Texts per embedding request")
	indexCmd.Flags().IntVar(&flagConcurrency, "concurrency", 4, "Concurrent embedding requests")
	indexCmd.Flags().StringVar(&flagQdrantHost, "qdrant-host", "localhost", "Qdrant host")
	indexCmd.Flags().IntVar(&flagQdrantPort, "qdrant-port", 6334, "Qdrant gRPC port")
}

func runIndex(cmd *cobra.Command, args []string) error {
	log := newLogger()
	defer log.Zap.Sync()

	client, err := newRunpodClient(log)
	if err != nil {
		return err
	}
	defer client.Close()

	vectors, err := embedChunked(cmd, client, args)
	if err != nil {
		return err
	}

	qc, err := qdrant.NewQdrantClient(qdrant.QdrantParams{
		Config: qdrant.FromEndpoint(flagQdrantHost).
			WithPort(flagQdrantPort).
			WithCollection(flagCollection).
			WithCompatibilityCheck(false),
	})
	if err != nil {
		return err
	}
	defer qc.Close()

	ctx := cmd.Context()
	if err := qc.EnsureCollection(ctx, flagCollection, uint64(len(vectors[0])), client.DefaultSpace()); err != nil {
		return err
	}

	inputs := make([]qdrant.VectorInput, len(vectors))
	for i, vec := range vectors {
		inputs[i] = qdrant.VectorInput{
			ID:      uuid.NewString(),
			Vector:  vec,
			Payload: map[string]any{"text": args[i]},
		}
	}

	if err := qc.Upsert(ctx, flagCollection, inputs); err != nil {
		return err
	}

	log.Info("Indexing complete", nil, map[string]interface{}{
		"collection": flagCollection,
		"points":     len(inputs),
		"dimensions": len(vectors[0]),
	})
	return nil
}

// embedChunked splits texts into batches and embeds them concurrently,
// reassembling the vectors in input order. Each batch is still a single
// request to the client; resilience and parallelism live here, not in the
// adapter.
func embedChunked(cmd *cobra.Command, client *runpod.Client, texts []string) ([][]float32, error) {
	batchSize := flagBatchSize
	if batchSize <= 0 {
		batchSize = 32
	}

	vectors := make([][]float32, len(texts))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(flagConcurrency)

	for start := 0; start < len(texts); start += batchSize {
		end := start + batchSize
		if end > len(texts) {
			end = len(texts)
		}

		g.Go(func() error {
			batch, err := client.Generate(ctx, texts[start:end])
			if err != nil {
				return fmt.Errorf("batch [%d:%d]: %w", start, end, err)
			}
			copy(vectors[start:end], batch)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}
