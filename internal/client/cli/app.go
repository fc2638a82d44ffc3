package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/campusgate/internal/client/client"
	"github.com/dmitrijs2005/campusgate/internal/client/config"
)

// PortalAPI is the subset of the gRPC client used by the commands.
type PortalAPI interface {
	RequestSignup(ctx context.Context, email string) error
	VerifySignup(ctx context.Context, email, otp, password string) error
	Login(ctx context.Context, email, password string) (*client.User, error)
	Ping(ctx context.Context) error
	Close() error
}

type App struct {
	config *config.Config
	api    PortalAPI
	user   *client.User
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewPortalClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}
	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.api.Close() }()

	fmt.Fprintln(a.out, "Welcome to campusgate CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.user.Email, a.user.Role)
}

// callCtx bounds a single server call by the configured request timeout.
func (a *App) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
