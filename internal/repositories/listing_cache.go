package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// ListingCacheRepository serves listing-by-id reads from Redis.
// Entries expire; writes to a listing invalidate its entry.
type ListingCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached listings
}

// NewListingCacheRepository creates a new cache repository with the given TTL.
func NewListingCacheRepository(client *redis.Client, expiration time.Duration) *ListingCacheRepository {
	return &ListingCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetByID fetches a cached listing. Returns errs.ErrNotFound on cache miss.
func (r *ListingCacheRepository) GetByID(ctx context.Context, id int64) (*models.ListingDB, error) {
	key := fmt.Sprintf("listing:%d", id)

	val, err := r.client.Get(ctx, key).Bytes()

	logger.Log.Infow(
		"key", key,
		"hit", err == nil,
		"error", err,
	)

	if err != nil {
		if err == redis.Nil {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	var listing models.ListingDB
	if err := json.Unmarshal(val, &listing); err != nil {
		return nil, err
	}

	return &listing, nil
}

// Set caches a listing under its id.
func (r *ListingCacheRepository) Set(ctx context.Context, listing *models.ListingDB) error {
	key := fmt.Sprintf("listing:%d", listing.ID)

	data, err := json.Marshal(listing)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cache entry for a listing after a write.
func (r *ListingCacheRepository) Invalidate(ctx context.Context, id int64) error {
	key := fmt.Sprintf("listing:%d", id)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
