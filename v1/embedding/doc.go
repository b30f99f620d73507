// Package embedding defines the provider-agnostic contract for computing
// text embeddings.
//
// # Overview
//
// The package exposes a single interface, [Provider], which hides all
// provider details (inference endpoints, HTTP, authentication) from the
// application layer, plus the [Space] type describing which similarity
// metrics are valid for a provider's vectors.
//
// Application code should depend on Provider, never on a concrete
// implementation:
//
//	vectors, err := provider.Generate(ctx, []string{"hello", "world"})
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────┐
//	│                 Application Layer                   │
//	│   (uses embedding.Provider - no provider imports)   │
//	└─────────────────────────┬───────────────────────────┘
//	                          │
//	                          ▼
//	┌─────────────────────────────────────────────────────┐
//	│               embedding.Provider                    │
//	│        (common interface + metric metadata)         │
//	└─────────────────────────┬───────────────────────────┘
//	                          │
//	                          ▼
//	┌─────────────────────────────────────────────────────┐
//	│                  runpod.Client                      │
//	│                  (implements)                       │
//	└─────────────────────────────────────────────────────┘
//
// Future providers would live in their own packages and only need to
// satisfy the interface.
//
// # Spaces
//
// Vectors are compared with a similarity metric. The three metrics every
// adapter in this module understands are:
//
//	| Space       | Meaning            |
//	|-------------|--------------------|
//	| SpaceCosine | cosine similarity  |
//	| SpaceL2     | Euclidean distance |
//	| SpaceIP     | inner product      |
//
// Providers report their default and supported metrics via DefaultSpace
// and SupportedSpaces so a vector database collection can be created with
// a compatible distance function.
package embedding
