package memory

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"sync"
)

// RefreshTokenRepository tracks the current refresh token per user. Only a
// SHA-256 digest is kept, and storing only the latest token means a refresh
// rotates the previous one out.
type RefreshTokenRepository struct {
	mu      sync.RWMutex
	digests map[string][32]byte
}

func NewRefreshTokenRepository() *RefreshTokenRepository {
	return &RefreshTokenRepository{digests: make(map[string][32]byte)}
}

func (r *RefreshTokenRepository) Store(_ context.Context, userID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.digests[userID] = sha256.Sum256([]byte(token))
	return nil
}

func (r *RefreshTokenRepository) Validate(_ context.Context, userID, token string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	current, ok := r.digests[userID]
	if !ok {
		return false, nil
	}
	digest := sha256.Sum256([]byte(token))
	return subtle.ConstantTimeCompare(current[:], digest[:]) == 1, nil
}

func (r *RefreshTokenRepository) Revoke(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.digests, userID)
	return nil
}
