// Package redis provides a Redis-backed implementation of the storage.Store interface.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/storage"
)

// KeyPrefix namespaces bill documents in a shared Redis database.
const KeyPrefix = "billsplit:bill:"

var _ storage.Store = (*RedisStore)(nil)

// RedisStore keeps each bill document as a JSON string value.
type RedisStore struct {
	client *goredis.Client
	ttl    time.Duration
}

// New connects to the Redis server at url (redis://host:port/db) and checks
// the connection. A ttl of zero keeps documents forever.
func New(ctx context.Context, url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return NewWithClient(client, ttl), nil
}

// NewWithClient wraps an existing client. The store takes ownership and
// closes it on Close.
func NewWithClient(client *goredis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// SaveBill stores the bill document under key, refreshing the TTL.
func (s *RedisStore) SaveBill(ctx context.Context, key string, bill *models.Bill) error {
	doc, err := storage.EncodeBill(bill)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, KeyPrefix+key, doc, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save bill: %w", err)
	}
	return nil
}

// LoadBill retrieves the bill document stored under key.
func (s *RedisStore) LoadBill(ctx context.Context, key string) (*models.Bill, error) {
	data, err := s.client.Get(ctx, KeyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load bill: %w", err)
	}
	return storage.DecodeBill(data)
}

// DeleteBill removes the bill document stored under key.
func (s *RedisStore) DeleteBill(ctx context.Context, key string) error {
	n, err := s.client.Del(ctx, KeyPrefix+key).Result()
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, key)
	}
	return nil
}
