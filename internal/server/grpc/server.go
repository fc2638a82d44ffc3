package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/campusgate/internal/logging"
	pb "github.com/dmitrijs2005/campusgate/internal/proto"
	"github.com/dmitrijs2005/campusgate/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ProvisioningService is the part of services.ProvisioningService the
// transport needs.
type ProvisioningService interface {
	RequestSignup(ctx context.Context, email string) error
	VerifySignup(ctx context.Context, email, code, password string) error
	Login(ctx context.Context, email, password string) (*models.Account, error)
}

type GRPCServer struct {
	pb.UnimplementedPortalServiceServer
	address      string
	provisioning ProvisioningService
	logger       logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, ps ProvisioningService) (*GRPCServer, error) {
	return &GRPCServer{
		address:      a,
		logger:       l.With("module", "grpc_server"),
		provisioning: ps,
	}, nil
}

// newServer builds a grpc.Server with PortalService and the standard health
// service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	pb.RegisterPortalServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(pb.PortalService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
