package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore remembers Idempotency-Key values and the row id each one
// produced, backed by Redis. Key format: idem:<client key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Lookup returns the row id recorded for key, or ok=false when unseen.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (uint, bool, error) {
	id, err := s.client.Get(ctx, s.key(key)).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: %w", err)
	}
	return uint(id), true, nil
}

// Record stores the row id produced for key (expires after idempotencyTTL).
func (s *IdempotencyStore) Record(ctx context.Context, key string, id uint) error {
	return s.client.Set(ctx, s.key(key), uint64(id), idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(key string) string {
	return "idem:" + key
}
