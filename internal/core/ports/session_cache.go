package ports

import (
	"context"
	"time"

	"github.com/andesalud/patient-gateway/internal/core/domain"
)

// SessionCache is a short-TTL cache of token-to-principal resolutions so
// that hot tokens do not hit the identity backend on every request. Lookups
// are best-effort: a cache failure is treated as a miss, never as an error.
type SessionCache interface {
	Get(ctx context.Context, tokenDigest string) (*domain.Principal, bool)
	Set(ctx context.Context, tokenDigest string, principal *domain.Principal, ttl time.Duration)
}
