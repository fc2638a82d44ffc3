// Package password hashes and verifies account passwords with bcrypt.
package password

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/campusgate/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// MaxLength is the longest password bcrypt accepts, in bytes.
const MaxLength = 72

// Hasher runs bcrypt off the caller's goroutine so a context deadline
// bounds how long a request waits for it.
type Hasher struct {
	cost  int
	dummy []byte
}

// NewHasher returns a Hasher with the given cost. Out-of-range costs fall
// back to bcrypt.DefaultCost. The digest DummyVerify compares against is
// computed here, so every DummyVerify call costs a single comparison.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	// Cannot fail: the cost is in range and the password is short.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("campusgate-dummy-password"), cost)
	return &Hasher{cost: cost, dummy: dummy}
}

// Cost reports the bcrypt cost used for new digests.
func (h *Hasher) Cost() int {
	return h.cost
}

// Hash returns a salted bcrypt digest of plaintext. Passwords longer than
// MaxLength are rejected with common.ErrInvalidPassword.
func (h *Hasher) Hash(ctx context.Context, plaintext string) (string, error) {
	if len(plaintext) > MaxLength {
		return "", common.ErrInvalidPassword
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("hash: %w", err)
	}

	type result struct {
		digest []byte
		err    error
	}
	ch := make(chan result, 1)
	go func() {
		d, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
		ch <- result{d, err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("hash: %w", ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return "", fmt.Errorf("hash: %w", r.err)
		}
		return string(r.digest), nil
	}
}

// Verify reports whether plaintext matches digest. A mismatch is
// (false, nil); a malformed digest or an expired context is an error.
func (h *Hasher) Verify(ctx context.Context, plaintext, digest string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("verify: %w", err)
	}
	ch := make(chan error, 1)
	go func() {
		ch <- bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	}()

	select {
	case <-ctx.Done():
		return false, fmt.Errorf("verify: %w", ctx.Err())
	case err := <-ch:
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, fmt.Errorf("verify: %w", err)
		}
	}
}

// DummyVerify spends about as long as Verify does on a real digest. Login
// calls it for unknown emails so response time does not reveal whether an
// account exists.
func (h *Hasher) DummyVerify(ctx context.Context, plaintext string) {
	_, _ = h.Verify(ctx, plaintext, string(h.dummy))
}
