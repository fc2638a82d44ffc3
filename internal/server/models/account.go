package models

import (
	"strings"
	"time"
)

// Role is the coarse account classification derived from the email domain.
type Role string

const (
	RoleUnknown Role = "Unknown"
	RoleTeacher Role = "Teacher"
	RoleStudent Role = "Student"
)

// Valid reports whether r may be stored on an Account.
func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleStudent
}

// Account is a provisioned portal account. PasswordHash never leaves the
// server; Login returns a copy with it cleared.
type Account struct {
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Public returns a copy of a without the password hash.
func (a *Account) Public() *Account {
	c := *a
	c.PasswordHash = ""
	return &c
}

// NormalizeEmail lowercases and trims an address so that it can be used as
// the account key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
