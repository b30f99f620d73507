package qdrant

import (
	"context"
	"fmt"
	"log"
	"slices"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/vectorstack/embed/v1/embedding"
)

const defaultBatchSize = 200 // chunk size for batch upserts

// EnsureCollection verifies if a given collection exists, and creates it if
// missing, sized for the given embedding dimension and using the distance
// matching the provider's similarity space.
//
// It's safe to call this multiple times — if the collection already exists,
// the function exits early. This pattern simplifies startup logic for
// embedding pipelines that bootstrap their own Qdrant collections.
func (c *QdrantClient) EnsureCollection(ctx context.Context, name string, vectorSize uint64, space embedding.Space) error {
	if name == "" {
		return fmt.Errorf("collection name cannot be empty")
	}
	if vectorSize == 0 {
		return fmt.Errorf("vector size cannot be zero")
	}

	distance, err := DistanceFor(space)
	if err != nil {
		return err
	}

	collections, err := c.api.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("[Qdrant] failed to list collections: %w", err)
	}

	if slices.Contains(collections, name) {
		log.Printf("[Qdrant] Collection '%s' already exists", name)
		return nil
	}

	log.Printf("[Qdrant] Collection '%s' not found, creating it (size=%d, distance=%s)...", name, vectorSize, distance)

	req := &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     vectorSize,
			Distance: distance,
		}),
	}

	if err := c.api.CreateCollection(ctx, req); err != nil {
		return fmt.Errorf("[Qdrant] failed to create collection '%s': %w", name, err)
	}

	log.Printf("[Qdrant] Created collection '%s' successfully", name)
	return nil
}

// Upsert inserts or updates embedding vectors in a collection.
//
// This method is safe to call for large datasets — it automatically splits
// the input into smaller chunks (`defaultBatchSize`) and performs multiple
// upserts sequentially.
func (c *QdrantClient) Upsert(ctx context.Context, collection string, inputs []VectorInput) error {
	if collection == "" {
		return fmt.Errorf("collection name cannot be empty")
	}
	if len(inputs) == 0 {
		return nil
	}

	for start := 0; start < len(inputs); start += defaultBatchSize {
		end := start + defaultBatchSize
		if end > len(inputs) {
			end = len(inputs)
		}

		if err := c.upsertBatch(ctx, collection, inputs[start:end]); err != nil {
			return fmt.Errorf("[Qdrant] batch upsert failed at [%d:%d]: %w", start, end, err)
		}
		log.Printf("[Qdrant] Upserted batch [%d:%d] (collection=%s)", start, end, collection)
	}

	return nil
}

// upsertBatch sends a single `Upsert` request for a slice of vectors.
// Wait=true triggers a blocking insert to ensure data persistence before
// returning.
func (c *QdrantClient) upsertBatch(ctx context.Context, collection string, batch []VectorInput) error {
	points := make([]*qdrant.PointStruct, 0, len(batch))
	for _, in := range batch {
		if len(in.Vector) == 0 {
			return fmt.Errorf("vector for point '%s' cannot be empty", in.ID)
		}

		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(in.ID),
			Vectors: qdrant.NewVectors(in.Vector...),
			Payload: qdrant.NewValueMap(in.Payload),
		})
	}

	wait := true
	req := &qdrant.UpsertPoints{
		CollectionName: collection,
		Points:         points,
		Wait:           &wait,
	}

	if _, err := c.api.Upsert(ctx, req); err != nil {
		return fmt.Errorf("[Qdrant] upsert failed: %w", err)
	}
	return nil
}

// Search performs a similarity search in a collection and returns the topK
// nearest stored vectors with their payloads.
func (c *QdrantClient) Search(ctx context.Context, collection string, vector []float32, topK int) ([]SearchResult, error) {
	if collection == "" {
		return nil, fmt.Errorf("collection name cannot be empty")
	}
	if len(vector) == 0 {
		return nil, fmt.Errorf("vector cannot be empty")
	}
	if topK <= 0 {
		return nil, fmt.Errorf("topK must be greater than 0")
	}

	limit := uint64(topK)
	req := &qdrant.QueryPoints{
		CollectionName: collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	}

	resp, err := c.api.Query(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] search failed: %w", err)
	}

	return parseSearchResults(resp)
}

// parseSearchResults converts the Qdrant response to SearchResult slices.
func parseSearchResults(resp []*qdrant.ScoredPoint) ([]SearchResult, error) {
	results := make([]SearchResult, 0, len(resp))
	for _, r := range resp {
		var id string
		switch v := r.Id.PointIdOptions.(type) {
		case *qdrant.PointId_Num:
			id = fmt.Sprintf("%d", v.Num)
		case *qdrant.PointId_Uuid:
			id = v.Uuid
		default:
			return nil, fmt.Errorf("[Qdrant] unexpected PointId type: %T", v)
		}

		results = append(results, SearchResult{
			ID:    id,
			Score: r.Score,
			Meta:  r.Payload,
		})
	}
	return results, nil
}

// Delete removes vectors from a collection by their IDs.
//
// It constructs a `DeletePoints` request containing a list of `PointId`s
// and waits synchronously for completion.
func (c *QdrantClient) Delete(ctx context.Context, collection string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	qdrantIDs := make([]*qdrant.PointId, 0, len(ids))
	for _, id := range ids {
		qdrantIDs = append(qdrantIDs, qdrant.NewID(id))
	}

	wait := true
	req := &qdrant.DeletePoints{
		CollectionName: collection,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Points{
				Points: &qdrant.PointsIdsList{Ids: qdrantIDs},
			},
		},
		Wait: &wait,
	}

	resp, err := c.api.Delete(ctx, req)
	if err != nil {
		return fmt.Errorf("[Qdrant] delete failed: %w", err)
	}

	log.Printf("[Qdrant] Delete completed (status=%s, collection=%s)", resp.Status.String(), collection)
	return nil
}

// GetCollection retrieves detailed metadata about a specific collection,
// decoupled from Qdrant SDK internals.
func (c *QdrantClient) GetCollection(ctx context.Context, name string) (*Collection, error) {
	if c.api == nil {
		return nil, fmt.Errorf("[Qdrant] client not initialized")
	}

	if name == "" {
		return nil, fmt.Errorf("collection name cannot be empty")
	}

	info, err := c.api.GetCollectionInfo(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to get collection '%s': %w", name, err)
	}

	size, distance := extractVectorDetails(info)
	space, _ := spaceForName(distance)

	return &Collection{
		Name:       name,
		Status:     info.Status.String(),
		Vectors:    derefUint64(info.IndexedVectorsCount),
		Points:     derefUint64(info.PointsCount),
		VectorSize: size,
		Distance:   distance,
		Space:      space,
	}, nil
}

// ListCollections retrieves all existing collections from Qdrant and returns
// their names as a string slice.
func (c *QdrantClient) ListCollections(ctx context.Context) ([]string, error) {
	if c.api == nil {
		return nil, fmt.Errorf("[Qdrant] client not initialized")
	}

	names, err := c.api.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to list collections: %w", err)
	}

	log.Printf("[Qdrant] Found %d collections", len(names))
	return names, nil
}
