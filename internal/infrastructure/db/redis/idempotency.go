package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultIdempotencyTTL = 24 * time.Hour

// IdempotencyStore maps client-supplied Idempotency-Key values to the session
// they created. Key format: idem:session:<key>
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore wraps client. A non-positive ttl falls back to 24 hours.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Lookup returns the session id remembered for key, if any.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (int64, bool, error) {
	raw, err := s.client.Get(ctx, idempotencyKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: %w", err)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: corrupt value %q", raw)
	}
	return id, true, nil
}

// Remember records sessionID under key. The first writer wins.
func (s *IdempotencyStore) Remember(ctx context.Context, key string, sessionID int64) error {
	if err := s.client.SetNX(ctx, idempotencyKey(key), sessionID, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency remember: %w", err)
	}
	return nil
}

func idempotencyKey(key string) string {
	return "idem:session:" + key
}

// NoopIdempotencyStore is used when Redis is not configured; every key misses.
type NoopIdempotencyStore struct{}

func (NoopIdempotencyStore) Lookup(context.Context, string) (int64, bool, error) { return 0, false, nil }

func (NoopIdempotencyStore) Remember(context.Context, string, int64) error { return nil }
