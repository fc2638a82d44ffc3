package cli

import (
	"context"
	"fmt"
	"time"
)

// Signup requests a verification code for an email address, then asks for
// the code and a password and completes the account.
func (a *App) Signup(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "-Enter institutional email", a.out)
	if err != nil {
		return a.fail("signup", err)
	}

	callCtx, cancel := a.callCtx(ctx)
	err = a.api.RequestSignup(callCtx, email)
	cancel()
	if err != nil {
		return a.fail("signup", err)
	}
	fmt.Fprintln(a.out, "OTP sent, check your mailbox")

	otp, err := GetSimpleText(a.reader, "-Enter OTP", a.out)
	if err != nil {
		return a.fail("signup", err)
	}

	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return a.fail("signup", err)
	}

	callCtx, cancel = a.callCtx(ctx)
	err = a.api.VerifySignup(callCtx, email, otp, password)
	cancel()
	if err != nil {
		return a.fail("signup", err)
	}

	fmt.Fprintln(a.out, "Signup complete, you can log in now")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "-Enter email", a.out)
	if err != nil {
		return a.fail("login", err)
	}

	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return a.fail("login", err)
	}

	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	user, err := a.api.Login(callCtx, email, password)
	if err != nil {
		return a.fail("login", err)
	}

	a.user = user
	fmt.Fprintf(a.out, "Logged in as %s (%s), account created %s\n",
		user.Email, user.Role, user.CreatedAt.Local().Format(time.DateTime))
	return nil
}

func (a *App) Logout(_ context.Context) error {
	a.user = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Ping reports whether the server is reachable and serving.
func (a *App) Ping(ctx context.Context) error {
	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.api.Ping(callCtx); err != nil {
		return a.fail("ping", err)
	}
	fmt.Fprintln(a.out, "Server is up")
	return nil
}

func (a *App) fail(op string, err error) error {
	fmt.Fprintf(a.out, "%s failed: %v\n", op, err)
	return err
}
