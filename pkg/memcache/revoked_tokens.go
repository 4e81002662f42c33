package mem

import (
	"context"
	"sync"
	"time"
)

// TokenRevocationStore remembers logged-out token ids until they would have
// expired anyway.
type TokenRevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type entry struct {
	expiresAt time.Time
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *RevokedTokens) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.data[tokenID] = entry{expiresAt: now.Add(ttl)}

	// opportunistic sweep so the map does not grow without bound
	if len(s.data) > 1000 {
		for k, e := range s.data {
			if now.After(e.expiresAt) {
				delete(s.data, k)
			}
		}
	}
	return nil
}

func (s *RevokedTokens) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.RLock()
	e, ok := s.data[tokenID]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, tokenID)
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}
