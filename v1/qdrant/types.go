package qdrant

import (
	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/vectorstack/embed/v1/embedding"
)

// VectorInput is one embedding vector prepared for upsert.
type VectorInput struct {
	// ID is the unique identifier for this vector (UUID or numeric string).
	ID string

	// Vector is the dense embedding representation.
	Vector []float32

	// Payload is optional metadata to store with the vector.
	Payload map[string]any
}

// SearchResult is one similarity-search hit.
type SearchResult struct {
	// ID is the unique identifier of the matched point.
	ID string

	// Score is the similarity score (higher = more similar for cosine).
	Score float32

	// Meta contains the payload stored with the vector.
	Meta map[string]*qdrant.Value
}

// Collection contains metadata about a vector collection.
type Collection struct {
	// Name is the unique identifier of the collection.
	Name string

	// Status indicates the operational state (e.g., "Green", "Yellow").
	Status string

	// Vectors is the number of indexed vectors.
	Vectors uint64

	// Points is the number of stored points.
	Points uint64

	// VectorSize is the dimension of vectors in this collection.
	VectorSize int

	// Distance is the Qdrant distance metric (e.g., "Cosine", "Dot", "Euclid").
	Distance string

	// Space is the database-agnostic form of Distance, empty when the
	// distance has no equivalent.
	Space embedding.Space
}
