package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/fraud-monitor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestDatasetCacheRepository_RedisContainer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewDatasetCacheRepository(rdb, 2*time.Second)
	key := models.DatasetKey{Day: "2026-10-18", Count: 2, Seed: 42, Rule: "percentile", Limit: 5000}

	t.Run("Set and Get dataset", func(t *testing.T) {
		require.NoError(t, repo.SetDataset(ctx, key, sampleDataset()))

		got, err := repo.GetDataset(ctx, key)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, models.Flag(true), got[1].IsFraud)
	})

	t.Run("Cached dataset expires", func(t *testing.T) {
		require.NoError(t, repo.SetDataset(ctx, key, sampleDataset()))

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err := repo.GetDataset(ctx, key)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}
