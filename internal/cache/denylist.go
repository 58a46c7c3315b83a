package cache

import (
	"context"
	"fmt"
	"time"
)

const revokedKeyPrefix = "revoked:"

// TokenDenylist remembers revoked token ids until the token would have
// expired anyway. A nil cache makes every operation a no-op.
type TokenDenylist struct {
	cache Cache
	now   func() time.Time
}

func NewTokenDenylist(c Cache) *TokenDenylist {
	return &TokenDenylist{cache: c, now: time.Now}
}

// Enabled reports whether revocations are persisted
func (d *TokenDenylist) Enabled() bool {
	return d != nil && d.cache != nil
}

// Revoke marks the token id as revoked until expiresAt. The marker value is the
// owning user id. Already expired tokens are skipped.
func (d *TokenDenylist) Revoke(ctx context.Context, tokenID, userID string, expiresAt time.Time) error {
	if !d.Enabled() {
		return nil
	}
	ttl := expiresAt.Sub(d.now())
	if ttl <= 0 {
		return nil
	}
	if err := d.cache.SetWithTTL(ctx, revokedKeyPrefix+tokenID, userID, ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if !d.Enabled() {
		return false, nil
	}
	return d.cache.Exists(ctx, revokedKeyPrefix+tokenID)
}
