package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/campusgate/internal/common"
	pb "github.com/dmitrijs2005/campusgate/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// User is the account summary returned by a successful login.
type User struct {
	Email     string
	Role      string
	CreatedAt time.Time
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.PortalServiceClient
	health      healthpb.HealthClient
}

func requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if md, ok := metadata.FromOutgoingContext(ctx); !ok || len(md.Get(common.RequestIDHeaderName)) == 0 {
		ctx = metadata.AppendToOutgoingContext(ctx, common.RequestIDHeaderName, uuid.NewString())
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewPortalClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults (insecure transport, request id interceptor).
func NewPortalClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(requestIDInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, dialOpts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewPortalServiceClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) RequestSignup(ctx context.Context, email string) error {
	_, err := s.client.RequestSignup(ctx, &pb.RequestSignupRequest{Email: email})
	return mapError(err)
}

func (s *GRPCClient) VerifySignup(ctx context.Context, email, otp, password string) error {
	_, err := s.client.VerifySignup(ctx, &pb.VerifySignupRequest{Email: email, Otp: otp, Password: password})
	return mapError(err)
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*User, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	u := resp.GetUser()
	if u == nil {
		return nil, fmt.Errorf("%w: empty login response", ErrServer)
	}
	return &User{Email: u.GetEmail(), Role: u.GetRole(), CreatedAt: u.GetCreatedAt().AsTime()}, nil
}

// Ping asks the server's health service whether PortalService is serving.
func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: pb.PortalService_ServiceDesc.ServiceName})
	if err != nil {
		return mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("%w: status %s", ErrUnavailable, resp.GetStatus())
	}
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// mapError keeps the server's message and classifies it by status code.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.InvalidArgument, codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	default:
		return fmt.Errorf("%w: %s", ErrServer, st.Message())
	}
}
