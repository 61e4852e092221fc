package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/tripverse/config"
	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     redis.UniversalClient
	catalogTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, catalogTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}), catalogTTL)
}

func NewRedisCacheWithClient(client redis.UniversalClient, catalogTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, catalogTTL: catalogTTL}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) GetTransports(ctx context.Context) ([]domain.Transport, error) {
	var transports []domain.Transport
	if err := c.getJSON(ctx, transportsKey(), &transports); err != nil {
		return nil, err
	}
	return transports, nil
}

func (c *RedisCache) SetTransports(ctx context.Context, transports []domain.Transport) error {
	return c.setJSON(ctx, transportsKey(), transports)
}

// InvalidateTransports drops the cached list so seat counts are re-read.
func (c *RedisCache) InvalidateTransports(ctx context.Context) error {
	return c.client.Del(ctx, transportsKey()).Err()
}

func (c *RedisCache) GetDestinations(ctx context.Context) ([]domain.Destination, error) {
	var destinations []domain.Destination
	if err := c.getJSON(ctx, destinationsKey(), &destinations); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (c *RedisCache) SetDestinations(ctx context.Context, destinations []domain.Destination) error {
	return c.setJSON(ctx, destinationsKey(), destinations)
}

func (c *RedisCache) GetPlaces(ctx context.Context) ([]domain.Place, error) {
	var places []domain.Place
	if err := c.getJSON(ctx, placesKey(), &places); err != nil {
		return nil, err
	}
	return places, nil
}

func (c *RedisCache) SetPlaces(ctx context.Context, places []domain.Place) error {
	return c.setJSON(ctx, placesKey(), places)
}

func (c *RedisCache) AcquireSeatLock(ctx context.Context, transportID int64, seat int, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, seatLockKey(transportID, seat), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseSeatLock(ctx context.Context, transportID int64, seat int) error {
	return c.client.Del(ctx, seatLockKey(transportID, seat)).Err()
}

// getJSON leaves dst untouched on a miss.
func (c *RedisCache) getJSON(ctx context.Context, key string, dst interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, dst)
}

func (c *RedisCache) setJSON(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.catalogTTL).Err()
}

func transportsKey() string {
	return "cache:transports"
}

func destinationsKey() string {
	return "cache:destinations"
}

func placesKey() string {
	return "cache:places"
}

func seatLockKey(transportID int64, seat int) string {
	return fmt.Sprintf("lock:transport:%d:seat:%d", transportID, seat)
}
