// Package httpapi exposes the provisioning operations as HTTP+JSON endpoints.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/campusgate/internal/logging"
	"github.com/dmitrijs2005/campusgate/internal/server/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

const (
	maxBodyBytes      = 1 << 20
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// ProvisioningService is the part of services.ProvisioningService the
// transport needs.
type ProvisioningService interface {
	RequestSignup(ctx context.Context, email string) error
	VerifySignup(ctx context.Context, email, code, password string) error
	Login(ctx context.Context, email, password string) (*models.Account, error)
}

type HTTPServer struct {
	address      string
	provisioning ProvisioningService
	logger       logging.Logger
	validate     *validator.Validate
}

func NewHTTPServer(a string, l logging.Logger, ps ProvisioningService) *HTTPServer {
	return &HTTPServer{
		address:      a,
		provisioning: ps,
		logger:       l.With("module", "http_server"),
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Handler returns the routed handler with middleware applied.
func (s *HTTPServer) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.healthHandler)

	r.Route("/api", func(api chi.Router) {
		api.Post("/signup/request", s.requestSignupHandler)
		api.Post("/signup/verify", s.verifySignupHandler)
		api.Post("/login", s.loginHandler)
	})

	return r
}

func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve handles requests on lis until ctx is cancelled, then shuts down
// gracefully.
func (s *HTTPServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *HTTPServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := middleware.GetReqID(r.Context())
		w.Header().Set(middleware.RequestIDHeader, requestID)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Info(r.Context(), "http request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
