package embedding

import "context"

// Provider is the pluggable embedding-provider contract consumed by a
// vector-database client. It turns an ordered batch of texts into an
// ordered batch of vectors and reports which similarity metrics are
// valid for those vectors.
//
// Example usage:
//
//	func NewIndexer(p embedding.Provider) *Indexer {
//	    return &Indexer{provider: p}
//	}
//
//	// Works with any implementation:
//	// - runpod.NewClient(cfg)
//	// - a local model, a mock, ...
type Provider interface {
	// Generate computes one embedding vector per input text, preserving
	// input order. An empty input yields an empty (non-nil) result and
	// must not touch the network.
	Generate(ctx context.Context, texts []string) ([][]float32, error)

	// DefaultSpace returns the similarity metric the provider's vectors
	// are tuned for.
	DefaultSpace() Space

	// SupportedSpaces returns every metric valid for the provider's
	// vectors.
	SupportedSpaces() []Space
}
