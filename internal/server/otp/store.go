// Package otp issues and consumes the one-time codes that prove control of
// an email address during signup.
package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// DefaultValidity is how long an issued code stays usable.
const DefaultValidity = 10 * time.Minute

// Store holds at most one outstanding code per email.
//
// Issue overwrites any previous code for the email. Consume succeeds at most
// once per issued code; on a mismatch the pending code stays in place so
// the user can retry.
type Store interface {
	Issue(ctx context.Context, email string) (string, error)
	Consume(ctx context.Context, email, code string) (bool, error)
}

// CodeGenerator produces a fresh code.
type CodeGenerator func() (string, error)

var codeSpan = big.NewInt(900000)

// GenerateCode returns a 6-digit code drawn uniformly from 100000..999999.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpan)
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
