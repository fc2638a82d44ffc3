package otp

import (
	"context"
	"crypto/subtle"
	"sync"
	"time"

	"github.com/dmitrijs2005/campusgate/internal/server/models"
)

type pending struct {
	code    string
	expires time.Time
}

// MemoryStore keeps codes in process memory. Everything is lost on restart,
// so signups in flight must be started again.
type MemoryStore struct {
	mu       sync.Mutex
	codes    map[string]pending
	validity time.Duration
	now      func() time.Time
	generate CodeGenerator
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) { s.now = now }
}

// WithGenerator replaces GenerateCode.
func WithGenerator(g CodeGenerator) MemoryOption {
	return func(s *MemoryStore) { s.generate = g }
}

// NewMemoryStore returns a store whose codes expire after validity.
// A non-positive validity means DefaultValidity.
func NewMemoryStore(validity time.Duration, opts ...MemoryOption) *MemoryStore {
	if validity <= 0 {
		validity = DefaultValidity
	}
	s := &MemoryStore{
		codes:    make(map[string]pending),
		validity: validity,
		now:      time.Now,
		generate: GenerateCode,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *MemoryStore) Issue(ctx context.Context, email string) (string, error) {
	code, err := s.generate()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[models.NormalizeEmail(email)] = pending{code: code, expires: s.now().Add(s.validity)}
	return code, nil
}

func (s *MemoryStore) Consume(ctx context.Context, email, code string) (bool, error) {
	key := models.NormalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.codes[key]
	if !ok {
		return false, nil
	}
	if !s.now().Before(p.expires) {
		delete(s.codes, key)
		return false, nil
	}
	if subtle.ConstantTimeCompare([]byte(p.code), []byte(code)) != 1 {
		return false, nil
	}
	delete(s.codes, key)
	return true, nil
}

// Len reports how many codes are held, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.codes)
}

// Sweep drops expired codes and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for k, p := range s.codes {
		if !now.Before(p.expires) {
			delete(s.codes, k)
			removed++
		}
	}
	return removed
}

// RunJanitor calls Sweep every interval until ctx is done.
func (s *MemoryStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
