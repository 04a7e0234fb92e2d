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

// IdempotencyCache remembers which ledger entry an idempotency key produced.
// Key format: ledger:idem:<uid>:<key>
type IdempotencyCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyCache wraps client. A non-positive ttl uses 24h.
func NewIdempotencyCache(client *redis.Client, ttl time.Duration) *IdempotencyCache {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyCache{client: client, ttl: ttl}
}

// Lookup returns the entry id stored for key.
func (c *IdempotencyCache) Lookup(ctx context.Context, uid, key string) (int64, bool, error) {
	v, err := c.client.Get(ctx, c.key(uid, key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: %w", err)
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: bad entry id %q: %w", v, err)
	}
	return id, true, nil
}

// Remember stores entryID for key unless the key is already present.
func (c *IdempotencyCache) Remember(ctx context.Context, uid, key string, entryID int64) error {
	if err := c.client.SetNX(ctx, c.key(uid, key), strconv.FormatInt(entryID, 10), c.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency remember: %w", err)
	}
	return nil
}

func (c *IdempotencyCache) key(uid, key string) string {
	return fmt.Sprintf("ledger:idem:%s:%s", uid, key)
}
