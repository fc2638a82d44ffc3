// Package server initializes and runs the campusgate server. It builds the
// account storage, OTP store, mail transport and provisioning service from
// config, serves them over gRPC and HTTP, and shuts down on SIGINT, SIGTERM
// or SIGQUIT.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/campusgate/internal/logging"
	"github.com/dmitrijs2005/campusgate/internal/server/config"
	"github.com/dmitrijs2005/campusgate/internal/server/httpapi"
	"github.com/dmitrijs2005/campusgate/internal/server/notify"
	"github.com/dmitrijs2005/campusgate/internal/server/otp"
	"github.com/dmitrijs2005/campusgate/internal/server/password"
	"github.com/dmitrijs2005/campusgate/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/campusgate/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/campusgate/internal/server/roles"
	"github.com/dmitrijs2005/campusgate/internal/server/services"

	gs "github.com/dmitrijs2005/campusgate/internal/server/grpc"
)

const janitorInterval = time.Minute

type App struct {
	config       *config.Config
	logger       logging.Logger
	provisioning *services.ProvisioningService

	otpStore  otp.Store
	memoryOTP *otp.MemoryStore
	closers   []io.Closer
}

// NewApp builds every component named by c. Database migrations run here,
// so a reachable database is required for the SQL drivers.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, logging.ParseLevel(c.LogLevel))
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (_ *App, err error) {
	app := &App{config: c, logger: logger}
	defer func() {
		if err != nil {
			_ = app.Close()
		}
	}()

	repo, err := app.initAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := app.initOTPStore(ctx); err != nil {
		return nil, fmt.Errorf("otp store init error: %w", err)
	}

	sender, err := app.initSender()
	if err != nil {
		return nil, err
	}

	app.provisioning = services.NewProvisioningService(
		repo,
		app.otpStore,
		password.NewHasher(c.BcryptCost),
		sender,
		roles.New(c.TeacherDomain, c.StudentDomain),
		logger,
		c,
	)

	return app, nil
}

func (app *App) initAccounts(ctx context.Context) (accounts.Repository, error) {
	if app.config.DatabaseDriver == repomanager.DriverMemory {
		app.logger.Warn(ctx, "using in-memory account storage; accounts are lost on restart")
		return accounts.NewMemoryRepository(), nil
	}

	m, err := repomanager.NewSQLRepositoryManager(app.config.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	db, err := repomanager.Open(ctx, app.config.DatabaseDriver, app.config.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, db)

	if err := m.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return m.Accounts(db), nil
}

func (app *App) initOTPStore(ctx context.Context) error {
	switch app.config.OTPStore {
	case "memory":
		app.memoryOTP = otp.NewMemoryStore(app.config.OTPValidity)
		app.otpStore = app.memoryOTP
	case "redis":
		rs, err := otp.NewRedisStoreFromURL(ctx, app.config.RedisURL, app.config.OTPValidity)
		if err != nil {
			return err
		}
		app.otpStore = rs
		app.closers = append(app.closers, rs)
	default:
		return fmt.Errorf("unsupported otp store %q", app.config.OTPStore)
	}
	return nil
}

func (app *App) initSender() (notify.Sender, error) {
	switch app.config.MailTransport {
	case "smtp":
		return notify.NewSMTPSender(notify.SMTPConfig{
			Host:     app.config.SMTPHost,
			Port:     app.config.SMTPPort,
			Username: app.config.SMTPUsername,
			Password: app.config.SMTPPassword,
			From:     app.config.SMTPFrom,
		}), nil
	case "log":
		return notify.NewLogSender(app.logger), nil
	default:
		return nil, fmt.Errorf("unsupported mail transport %q", app.config.MailTransport)
	}
}

// Close releases the database pool and the Redis client.
func (app *App) Close() error {
	var errs []error
	for i := len(app.closers) - 1; i >= 0; i-- {
		errs = append(errs, app.closers[i].Close())
	}
	app.closers = nil
	return errors.Join(errs...)
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.provisioning)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.provisioning)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a signal arrives, or either server
// fails. Resources are closed before it returns.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	if app.memoryOTP != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.memoryOTP.RunJanitor(ctx, janitorInterval)
		}()
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.Close(); err != nil {
		app.logger.Error(context.Background(), "close", "error", err)
	}
	app.logger.Info(context.Background(), "App stopped")
}
