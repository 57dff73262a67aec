package memory

import (
	"context"
	"sync"
	"time"
)

// TokenRevoker is an in-process logout denylist. Entries expire with the
// token they revoke; expired entries are dropped lazily on lookup.
type TokenRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time // token id -> expiry
}

func NewTokenRevoker() *TokenRevoker {
	return &TokenRevoker{revoked: make(map[string]time.Time)}
}

func (r *TokenRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[tokenID] = time.Now().Add(ttl)
	return nil
}

func (r *TokenRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expiry, ok := r.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(r.revoked, tokenID)
		return false, nil
	}
	return true, nil
}
