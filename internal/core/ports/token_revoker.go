package ports

import (
	"context"
	"time"
)

// TokenRevoker abstracts the logout denylist. Revoked token ids stay listed
// until their natural expiry, after which the entry may be dropped.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
