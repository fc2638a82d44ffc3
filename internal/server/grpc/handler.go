package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/campusgate/internal/common"
	pb "github.com/dmitrijs2005/campusgate/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) RequestSignup(ctx context.Context, req *pb.RequestSignupRequest) (*pb.RequestSignupResponse, error) {

	if err := s.provisioning.RequestSignup(ctx, req.Email); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.RequestSignupResponse{Message: "OTP sent successfully"}, nil

}

func (s *GRPCServer) VerifySignup(ctx context.Context, req *pb.VerifySignupRequest) (*pb.VerifySignupResponse, error) {

	if err := s.provisioning.VerifySignup(ctx, req.Email, req.Otp, req.Password); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.VerifySignupResponse{Success: true, Message: "Signup complete"}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	account, err := s.provisioning.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.LoginResponse{
		Success: true,
		User: &pb.User{
			Email:     account.Email,
			Role:      string(account.Role),
			CreatedAt: timestamppb.New(account.CreatedAt),
		},
	}, nil

}

// toStatus maps a service error onto a gRPC status carrying only a fixed
// message. Faults are logged here with their cause.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	var code codes.Code
	switch {
	case errors.Is(err, common.ErrMissingFields),
		errors.Is(err, common.ErrInvalidDomain),
		errors.Is(err, common.ErrInvalidPassword):
		code = codes.InvalidArgument
	case errors.Is(err, common.ErrAccountExists):
		code = codes.AlreadyExists
	case errors.Is(err, common.ErrInvalidOTP),
		errors.Is(err, common.ErrInvalidCredentials):
		code = codes.Unauthenticated
	case errors.Is(err, common.ErrDeliveryFailed):
		code = codes.Unavailable
	default:
		s.logger.Error(ctx, "request failed", "request_id", RequestIDFromContext(ctx), "error", err)
		return status.Error(codes.Internal, "internal error")
	}
	return status.Error(code, common.ErrorMessage(err))
}
