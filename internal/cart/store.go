package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/NonattoDev/ecommercesoftline-backend/pkg/redis"
)

// SnapshotStore persists the full cart snapshot per customer identity.
type SnapshotStore interface {
	Save(ctx context.Context, customerID string, items []LineItem) error
	Load(ctx context.Context, customerID string) ([]LineItem, bool, error)
	Delete(ctx context.Context, customerID string) error
}

// RedisStore keeps cart snapshots as JSON values keyed by customer identity.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore builds the snapshot store. A zero TTL keeps snapshots until
// the cart is cleared.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, customerID string, items []LineItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding cart snapshot: %w", err)
	}
	return s.client.Set(ctx, s.client.CartKey(customerID), payload, s.ttl)
}

func (s *RedisStore) Load(ctx context.Context, customerID string) ([]LineItem, bool, error) {
	raw, err := s.client.Get(ctx, s.client.CartKey(customerID))
	if err != nil {
		if redis.IsMissing(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false, fmt.Errorf("decoding cart snapshot: %w", err)
	}
	return items, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, customerID string) error {
	return s.client.Del(ctx, s.client.CartKey(customerID))
}
