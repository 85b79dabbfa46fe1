package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/fraud-monitor/internal/logger"
	"github.com/sbilibin2017/fraud-monitor/internal/models"
)

// ErrCacheMiss is returned when no dataset is cached under a key.
var ErrCacheMiss = errors.New("dataset not found in cache")

// DatasetCacheRepository caches generated datasets in Redis
type DatasetCacheRepository struct {
	client redis.Cmdable
	exp    time.Duration // expiration duration for cached datasets
}

// NewDatasetCacheRepository creates a new repository instance with optional TTL
func NewDatasetCacheRepository(client redis.Cmdable, expiration time.Duration) *DatasetCacheRepository {
	return &DatasetCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func datasetKey(key models.DatasetKey) string {
	return fmt.Sprintf("transactions:%s:%d:%d:%s:%s",
		key.Day, key.Count, key.Seed, key.Rule, strconv.FormatFloat(key.Limit, 'f', -1, 64))
}

// GetDataset fetches a cached dataset
func (r *DatasetCacheRepository) GetDataset(ctx context.Context, key models.DatasetKey) ([]models.Transaction, error) {
	k := datasetKey(key)

	val, err := r.client.Get(ctx, k).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			logger.Log.Debugw("dataset cache miss", "key", k)
			return nil, fmt.Errorf("%w: %s", ErrCacheMiss, k)
		}
		logger.Log.Errorw("failed to read dataset from cache", "key", k, "error", err)
		return nil, err
	}

	var txs []models.Transaction
	if err := json.Unmarshal(val, &txs); err != nil {
		logger.Log.Errorw("failed to decode cached dataset", "key", k, "error", err)
		return nil, err
	}

	logger.Log.Debugw("dataset cache hit", "key", k, "records", len(txs))
	return txs, nil
}

// SetDataset caches a dataset in Redis with expiration
func (r *DatasetCacheRepository) SetDataset(ctx context.Context, key models.DatasetKey, txs []models.Transaction) error {
	k := datasetKey(key)

	data, err := json.Marshal(txs)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, k, data, r.exp).Err()
	logger.Log.Debugw("dataset cached",
		"key", k,
		"records", len(txs),
		"bytes", len(data),
		"error", err,
	)
	return err
}
