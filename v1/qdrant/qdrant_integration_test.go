package qdrant

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/vectorstack/embed/v1/embedding"
)

// qdrantContainer represents a Qdrant container for testing
type qdrantContainer struct {
	testcontainers.Container
	Host string
	Port int
}

// setupQdrantContainer starts a Qdrant container for testing
func setupQdrantContainer(ctx context.Context) (*qdrantContainer, error) {
	port, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("could not get free port: %w", err)
	}

	portStr := fmt.Sprintf("%d", port)
	portBindings := nat.PortMap{
		"6334/tcp": []nat.PortBinding{{HostPort: portStr}},
	}

	req := testcontainers.ContainerRequest{
		Image: "qdrant/qdrant:v1.11.0",
		Env: map[string]string{
			"QDRANT__SERVICE__GRPC_PORT": "6334",
		},
		ExposedPorts: []string{"6334/tcp"},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForListeningPort("6334/tcp").WithStartupTimeout(60 * time.Second),
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start qdrant container: %w", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get host: %w", err)
	}

	mappedPort, err := c.MappedPort(ctx, "6334")
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	if err := waitForQdrantReady(host, mappedPort.Port(), 30*time.Second); err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("qdrant container not ready: %w", err)
	}

	return &qdrantContainer{
		Container: c,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

// getFreePort gets a free port from the OS
func getFreePort() (int, error) {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil
}

// waitForQdrantReady attempts to connect to Qdrant until it's ready or times out
func waitForQdrantReady(host, port string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, port), time.Second)
		if err == nil {
			_ = conn.Close()
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("timed out waiting for Qdrant to be ready after %s", timeout)
}

func newIntegrationClient(t *testing.T, qc *qdrantContainer) *QdrantClient {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Endpoint = qc.Host
	cfg.Port = qc.Port
	cfg.CheckCompatibility = false

	client, err := NewQdrantClient(QdrantParams{Config: cfg})
	require.NoError(t, err)
	return client
}

func TestQdrantVectorLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	qcont, err := setupQdrantContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := qcont.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}()

	client := newIntegrationClient(t, qcont)
	defer client.Close()

	const collection = "lifecycle_test"

	t.Run("EnsureCollection", func(t *testing.T) {
		require.NoError(t, client.EnsureCollection(ctx, collection, 4, embedding.SpaceCosine))

		// Second call is a no-op.
		require.NoError(t, client.EnsureCollection(ctx, collection, 4, embedding.SpaceCosine))

		names, err := client.ListCollections(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, collection)
	})

	t.Run("CollectionMatchesSpace", func(t *testing.T) {
		info, err := client.GetCollection(ctx, collection)
		require.NoError(t, err)
		assert.Equal(t, 4, info.VectorSize)
		assert.Equal(t, "Cosine", info.Distance)
		assert.Equal(t, embedding.SpaceCosine, info.Space)
	})

	t.Run("UpsertAndSearch", func(t *testing.T) {
		inputs := []VectorInput{
			{ID: "11111111-1111-1111-1111-111111111111", Vector: []float32{1, 0, 0, 0}, Payload: map[string]any{"text": "alpha"}},
			{ID: "22222222-2222-2222-2222-222222222222", Vector: []float32{0, 1, 0, 0}, Payload: map[string]any{"text": "beta"}},
			{ID: "33333333-3333-3333-3333-333333333333", Vector: []float32{0, 0, 1, 0}, Payload: map[string]any{"text": "gamma"}},
		}
		require.NoError(t, client.Upsert(ctx, collection, inputs))

		results, err := client.Search(ctx, collection, []float32{1, 0, 0, 0}, 2)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "11111111-1111-1111-1111-111111111111", results[0].ID)
		assert.Greater(t, results[0].Score, results[1].Score)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, client.Delete(ctx, collection, []string{"11111111-1111-1111-1111-111111111111"}))

		results, err := client.Search(ctx, collection, []float32{1, 0, 0, 0}, 3)
		require.NoError(t, err)
		for _, r := range results {
			assert.NotEqual(t, "11111111-1111-1111-1111-111111111111", r.ID)
		}
	})
}

func TestQdrantCollectionPerSpace(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	qcont, err := setupQdrantContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := qcont.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}()

	client := newIntegrationClient(t, qcont)
	defer client.Close()

	expected := map[embedding.Space]string{
		embedding.SpaceCosine: "Cosine",
		embedding.SpaceL2:     "Euclid",
		embedding.SpaceIP:     "Dot",
	}

	for space, distance := range expected {
		name := "space_" + string(space)
		require.NoError(t, client.EnsureCollection(ctx, name, 8, space))

		info, err := client.GetCollection(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, distance, info.Distance, "collection %s", name)
		assert.Equal(t, space, info.Space, "collection %s", name)
	}
}

func TestQdrantConnectionFailure(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cfg := DefaultConfig()
	cfg.Endpoint = "localhost"
	cfg.Port = 1 // nothing listens here
	cfg.CheckCompatibility = false

	_, err := NewQdrantClient(QdrantParams{Config: cfg})
	assert.Error(t, err)
}
