package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/andesalud/patient-gateway/internal/core/domain"
)

// SessionCache caches resolved principals by token digest so hot tokens do
// not cost a backend round-trip per request. Entries expire on their own;
// nothing here invalidates early, which bounds the staleness window of a
// revoked token to the configured TTL.
// Key format: session:<hex token digest>
type SessionCache struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewSessionCache creates a SessionCache wrapping the given Redis client.
func NewSessionCache(client *redis.Client, logger zerolog.Logger) *SessionCache {
	return &SessionCache{client: client, logger: logger}
}

// Get returns the cached principal for the digest. Any cache error counts
// as a miss.
func (c *SessionCache) Get(ctx context.Context, tokenDigest string) (*domain.Principal, bool) {
	raw, err := c.client.Get(ctx, c.key(tokenDigest)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Msg("session cache read failed")
		}
		return nil, false
	}

	var p domain.Principal
	if err := json.Unmarshal(raw, &p); err != nil {
		c.logger.Warn().Err(err).Msg("session cache entry corrupt")
		return nil, false
	}
	return &p, true
}

// Set stores the principal under the digest with the given TTL. Failures
// are logged and dropped; caching is never load-bearing.
func (c *SessionCache) Set(ctx context.Context, tokenDigest string, principal *domain.Principal, ttl time.Duration) {
	raw, err := json.Marshal(principal)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(tokenDigest), raw, ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("session cache write failed")
	}
}

func (c *SessionCache) key(tokenDigest string) string {
	return "session:" + tokenDigest
}
