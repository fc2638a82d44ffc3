package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/campusgate/internal/client/client"
	"github.com/dmitrijs2005/campusgate/internal/client/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	requested []string
	verified  [][3]string
	loginArgs [2]string

	requestErr error
	verifyErr  error
	loginErr   error
	pingErr    error
	user       *client.User
	closed     bool
	deadline   bool
}

func (f *fakeAPI) RequestSignup(ctx context.Context, email string) error {
	_, f.deadline = ctx.Deadline()
	f.requested = append(f.requested, email)
	return f.requestErr
}

func (f *fakeAPI) VerifySignup(_ context.Context, email, otp, password string) error {
	f.verified = append(f.verified, [3]string{email, otp, password})
	return f.verifyErr
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (*client.User, error) {
	f.loginArgs = [2]string{email, password}
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.user, nil
}

func (f *fakeAPI) Ping(context.Context) error { return f.pingErr }
func (f *fakeAPI) Close() error               { f.closed = true; return nil }

func newTestApp(api PortalAPI, input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		config: &config.Config{RequestTimeout: time.Second},
		api:    api,
		reader: rdr(input),
		out:    out,
	}, out
}

func TestSignup_Success(t *testing.T) {
	stubTerminal(t, false, nil, nil)
	api := &fakeAPI{}
	app, out := newTestApp(api, "a@kongu.edu\n123456\nsecret\n")

	require.NoError(t, app.Signup(context.Background()))

	assert.Equal(t, []string{"a@kongu.edu"}, api.requested)
	assert.Equal(t, [][3]string{{"a@kongu.edu", "123456", "secret"}}, api.verified)
	assert.True(t, api.deadline, "calls must be bounded by the request timeout")
	assert.Contains(t, out.String(), "Signup complete")
}

func TestSignup_RequestRejectedStopsFlow(t *testing.T) {
	stubTerminal(t, false, nil, nil)
	api := &fakeAPI{requestErr: client.ErrRejected}
	app, out := newTestApp(api, "a@gmail.com\n123456\nsecret\n")

	err := app.Signup(context.Background())
	assert.ErrorIs(t, err, client.ErrRejected)
	assert.Empty(t, api.verified)
	assert.Contains(t, out.String(), "signup failed")
}

func TestSignup_VerifyFails(t *testing.T) {
	stubTerminal(t, false, nil, nil)
	api := &fakeAPI{verifyErr: client.ErrUnauthorized}
	app, _ := newTestApp(api, "a@kongu.edu\n000000\nsecret\n")

	assert.ErrorIs(t, app.Signup(context.Background()), client.ErrUnauthorized)
}

func TestSignup_InputEOF(t *testing.T) {
	stubTerminal(t, false, nil, nil)
	api := &fakeAPI{}
	app, _ := newTestApp(api, "a@kongu.edu\n")

	assert.Error(t, app.Signup(context.Background()))
	assert.Empty(t, api.verified)
}

func TestLogin_SuccessAndLogout(t *testing.T) {
	stubTerminal(t, false, nil, nil)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	api := &fakeAPI{user: &client.User{Email: "t@kongu.ac.in", Role: "Teacher", CreatedAt: created}}
	app, out := newTestApp(api, "t@kongu.ac.in\npw\n")

	require.NoError(t, app.Login(context.Background()))
	assert.Equal(t, [2]string{"t@kongu.ac.in", "pw"}, api.loginArgs)
	assert.True(t, app.isLoggedIn())
	assert.Equal(t, "(t@kongu.ac.in Teacher)", app.getStatus())
	assert.Contains(t, out.String(), "Logged in as t@kongu.ac.in (Teacher)")

	require.NoError(t, app.Logout(context.Background()))
	assert.False(t, app.isLoggedIn())
	assert.Equal(t, "", app.getStatus())
}

func TestLogin_Failure(t *testing.T) {
	stubTerminal(t, false, nil, nil)
	api := &fakeAPI{loginErr: client.ErrUnauthorized}
	app, out := newTestApp(api, "t@kongu.ac.in\nwrong\n")

	assert.ErrorIs(t, app.Login(context.Background()), client.ErrUnauthorized)
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "login failed")
}

func TestPing(t *testing.T) {
	app, out := newTestApp(&fakeAPI{}, "")
	require.NoError(t, app.Ping(context.Background()))
	assert.Contains(t, out.String(), "Server is up")

	app, _ = newTestApp(&fakeAPI{pingErr: client.ErrUnavailable}, "")
	assert.ErrorIs(t, app.Ping(context.Background()), client.ErrUnavailable)
}

func TestRun_ClosesAPI(t *testing.T) {
	capturePrints(t)
	api := &fakeAPI{}
	app, _ := newTestApp(api, "exit\n")

	app.Run(context.Background())
	assert.True(t, api.closed)
}

func TestCallCtx_NoTimeout(t *testing.T) {
	app := &App{}
	ctx, cancel := app.callCtx(context.Background())
	defer cancel()
	_, ok := ctx.Deadline()
	assert.False(t, ok)
}
