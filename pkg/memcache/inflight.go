package mem

import (
	"sync"
	"time"
)

// InFlightStore tracks keys that currently own a running operation.
type InFlightStore interface {
	// TryAcquire claims key for ttl and returns the owner token. ok is false
	// while another live claim on key exists. Expired claims are taken over.
	TryAcquire(key string, ttl time.Duration) (token uint64, ok bool)

	// Release drops the claim on key only if token still owns it, so a
	// holder whose claim expired cannot free a newer owner's claim.
	Release(key string, token uint64)

	// Held reports whether key has a live claim.
	Held(key string) bool
}

type claim struct {
	token     uint64
	expiresAt time.Time
}

type InFlight struct {
	mu   sync.Mutex
	data map[string]claim
	next uint64
	now  func() time.Time
}

func NewInFlight() *InFlight {
	return &InFlight{
		data: make(map[string]claim),
		now:  time.Now,
	}
}

func (s *InFlight) TryAcquire(key string, ttl time.Duration) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if c, ok := s.data[key]; ok && now.Before(c.expiresAt) {
		return 0, false
	}

	s.next++
	s.data[key] = claim{token: s.next, expiresAt: now.Add(ttl)}
	s.sweep(now)
	return s.next, true
}

func (s *InFlight) Release(key string, token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.data[key]; ok && c.token == token {
		delete(s.data, key)
	}
}

func (s *InFlight) Held(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.data[key]
	return ok && s.now().Before(c.expiresAt)
}

// sweep drops expired claims. Caller holds mu.
func (s *InFlight) sweep(now time.Time) {
	for k, c := range s.data {
		if !now.Before(c.expiresAt) {
			delete(s.data, k)
		}
	}
}
