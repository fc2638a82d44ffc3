package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleTeacher.Valid())
	assert.True(t, RoleStudent.Valid())
	assert.False(t, RoleUnknown.Valid())
	assert.False(t, Role("Admin").Valid())
}

func TestAccount_Public_StripsHashWithoutMutating(t *testing.T) {
	now := time.Now().UTC()
	a := &Account{Email: "a@kongu.edu", PasswordHash: "$2a$10$x", Role: RoleStudent, CreatedAt: now}

	p := a.Public()

	assert.Empty(t, p.PasswordHash)
	assert.Equal(t, "a@kongu.edu", p.Email)
	assert.Equal(t, RoleStudent, p.Role)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, "$2a$10$x", a.PasswordHash)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@kongu.edu", NormalizeEmail("  A@Kongu.EDU\n"))
	assert.Equal(t, "", NormalizeEmail("   "))
}
