// Package qdrant provides a thin wrapper around the official Qdrant Go
// client, tailored to embedding pipelines built on the embedding.Provider
// contract.
//
// # Overview
//
// The wrapper covers the operations an indexing pipeline needs and nothing
// more: create a collection whose distance matches the provider's
// similarity space, upsert vectors in batches, query them back, and delete
// by id.
//
//	qc, err := qdrant.NewQdrantClient(qdrant.QdrantParams{
//	    Config: qdrant.FromEndpoint("localhost"),
//	})
//	if err != nil {
//	    return err
//	}
//
//	// Collection distance follows the provider's default space.
//	err = qc.EnsureCollection(ctx, "docs", uint64(len(vectors[0])), provider.DefaultSpace())
//
// # Space conversion
//
// DistanceFor and SpaceFor translate between the database-agnostic
// embedding.Space metrics and Qdrant's distance enum:
//
//	| Space       | Qdrant distance |
//	|-------------|-----------------|
//	| SpaceCosine | Cosine          |
//	| SpaceL2     | Euclid          |
//	| SpaceIP     | Dot             |
//
// # Dependency Injection (Fx)
//
// A ready-to-use Fx module is provided, requiring a *qdrant.Config in the
// container:
//
//	app := fx.New(
//	    qdrant.FXModule,
//	    fx.Provide(func() *qdrant.Config { return qdrant.FromEndpoint("localhost") }),
//	)
package qdrant
