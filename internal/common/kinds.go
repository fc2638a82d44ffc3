package common

import "errors"

// InternalErrorKind is reported for every error that is not a client error.
const InternalErrorKind = "InternalError"

type kind struct {
	err     error
	name    string
	message string
}

// Client-visible error kinds, in match order.
var kinds = []kind{
	{ErrMissingFields, "MissingFields", "Required fields are missing"},
	{ErrInvalidDomain, "InvalidDomain", "Email must belong to the staff or student domain"},
	{ErrInvalidPassword, "InvalidPassword", "Password must be at most 72 bytes"},
	{ErrAccountExists, "AccountExists", "User already exists with this email"},
	{ErrInvalidOTP, "InvalidOtp", "Invalid OTP"},
	{ErrInvalidCredentials, "InvalidCredentials", "Invalid credentials"},
	{ErrDeliveryFailed, "DeliveryFailed", "Failed to send OTP"},
}

// ErrorKind names the kind of err for clients, or InternalErrorKind.
func ErrorKind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return InternalErrorKind
}

// ErrorMessage returns a fixed, client-safe message for err. The wrapped
// cause is never included.
func ErrorMessage(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.message
		}
	}
	return "Server error"
}
