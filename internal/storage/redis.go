package storage

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores records in an external Redis instance under a key
// prefix. It ranks below the file tier: durable only as far as the Redis
// deployment is, but still better than the in-process map.
type RedisBackend struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds connection settings for the Redis tier.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// NewRedisBackend connects to Redis and pings it so an unreachable server
// fails the probe at selection time.
func NewRedisBackend(cfg RedisConfig) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	keyPrefix := cfg.KeyPrefix
	if keyPrefix == "" {
		keyPrefix = "bakery:records"
	}

	log.Printf("[RedisBackend] Initialized - DB:%d, prefix:%s", cfg.DB, keyPrefix)
	return &RedisBackend{client: client, keyPrefix: keyPrefix}, nil
}

func (r *RedisBackend) redisKey(key string) string {
	return r.keyPrefix + ":" + key
}

// Read retrieves the document stored under key.
func (r *RedisBackend) Read(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, r.redisKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

// Write stores the document under key with no expiry.
func (r *RedisBackend) Write(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, r.redisKey(key), value, 0).Err()
}

// Name returns the tier name.
func (r *RedisBackend) Name() string { return "redis" }

// Close closes the Redis client.
func (r *RedisBackend) Close() error {
	return r.client.Close()
}

var _ Backend = (*RedisBackend)(nil)
