package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrMissingFields, "MissingFields"},
		{ErrInvalidDomain, "InvalidDomain"},
		{ErrInvalidPassword, "InvalidPassword"},
		{ErrAccountExists, "AccountExists"},
		{ErrInvalidOTP, "InvalidOtp"},
		{ErrInvalidCredentials, "InvalidCredentials"},
		{fmt.Errorf("%w: %w", ErrDeliveryFailed, errors.New("smtp 421")), "DeliveryFailed"},
		{fmt.Errorf("%w: %w", ErrRepositoryFault, errors.New("dial tcp")), InternalErrorKind},
		{ErrHashingFault, InternalErrorKind},
		{errors.New("anything"), InternalErrorKind},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorKind(tt.err), tt.err.Error())
	}
}

func TestErrorMessage_NeverLeaksCause(t *testing.T) {
	err := fmt.Errorf("%w: %w", ErrRepositoryFault, errors.New("password=hunter2 host=db"))
	assert.Equal(t, "Server error", ErrorMessage(err))

	err = fmt.Errorf("%w: %w", ErrDeliveryFailed, errors.New("535 auth failed for otp-bot"))
	assert.Equal(t, "Failed to send OTP", ErrorMessage(err))
}
