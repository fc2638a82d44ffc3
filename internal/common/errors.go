// Package common defines shared constants and sentinel errors used across
// the campusgate server, transports and client. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound     = errors.New("not found")
	ErrDuplicateEmail = errors.New("duplicate email")

	// Provisioning errors. These are safe to show to clients.
	ErrInvalidDomain      = errors.New("invalid domain")
	ErrAccountExists      = errors.New("account exists")
	ErrInvalidOTP         = errors.New("invalid otp")
	ErrMissingFields      = errors.New("missing fields")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDeliveryFailed     = errors.New("delivery failed")

	// Collaborator faults. The wrapped cause goes to server logs only.
	ErrRepositoryFault = errors.New("repository fault")
	ErrHashingFault    = errors.New("hashing fault")
)
