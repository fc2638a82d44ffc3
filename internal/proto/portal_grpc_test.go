package proto

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	gproto "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type echoServer struct {
	UnimplementedPortalServiceServer
}

func (echoServer) Login(_ context.Context, in *LoginRequest) (*LoginResponse, error) {
	return &LoginResponse{
		Success: true,
		User:    &User{Email: in.GetEmail(), Role: "Student", CreatedAt: timestamppb.New(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))},
	}, nil
}

func dial(t *testing.T, srv PortalServiceServer) PortalServiceClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	RegisterPortalServiceServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewPortalServiceClient(conn)
}

func TestDescriptor_Registered(t *testing.T) {
	fd, err := protoregistry.GlobalFiles.FindFileByPath("internal/proto/portal.proto")
	require.NoError(t, err)
	assert.Equal(t, protoreflect.FullName("campusgate.v1"), fd.Package())

	svc := fd.Services().ByName("PortalService")
	require.NotNil(t, svc)
	assert.Equal(t, PortalService_ServiceDesc.ServiceName, string(svc.FullName()))

	methods := map[string][2]string{
		"RequestSignup": {"campusgate.v1.RequestSignupRequest", "campusgate.v1.RequestSignupResponse"},
		"VerifySignup":  {"campusgate.v1.VerifySignupRequest", "campusgate.v1.VerifySignupResponse"},
		"Login":         {"campusgate.v1.LoginRequest", "campusgate.v1.LoginResponse"},
	}
	assert.Equal(t, len(methods), svc.Methods().Len())
	for name, io := range methods {
		m := svc.Methods().ByName(protoreflect.Name(name))
		require.NotNil(t, m, name)
		assert.Equal(t, io[0], string(m.Input().FullName()))
		assert.Equal(t, io[1], string(m.Output().FullName()))
	}

	createdAt := (&User{}).ProtoReflect().Descriptor().Fields().ByName("created_at")
	require.NotNil(t, createdAt)
	assert.Equal(t, "createdAt", createdAt.JSONName())
	assert.Equal(t, protoreflect.FullName("google.protobuf.Timestamp"), createdAt.Message().FullName())
}

func TestUser_WireRoundTrip(t *testing.T) {
	in := &LoginResponse{
		Success: true,
		User:    &User{Email: "t@kongu.ac.in", Role: "Teacher", CreatedAt: timestamppb.New(time.Date(2026, 5, 6, 7, 8, 9, 10, time.UTC))},
	}
	b, err := gproto.Marshal(in)
	require.NoError(t, err)

	out := &LoginResponse{}
	require.NoError(t, gproto.Unmarshal(b, out))
	assert.True(t, gproto.Equal(in, out), "got %v", out)
	assert.True(t, out.GetUser().GetCreatedAt().AsTime().Equal(time.Date(2026, 5, 6, 7, 8, 9, 10, time.UTC)))
}

func TestGetters_NilSafe(t *testing.T) {
	var resp *LoginResponse
	assert.Nil(t, resp.GetUser())
	assert.Equal(t, "", resp.GetUser().GetEmail())
	assert.Nil(t, resp.GetUser().GetCreatedAt())
}

func TestClientServer_RoundTrip(t *testing.T) {
	client := dial(t, echoServer{})

	resp, err := client.Login(context.Background(), &LoginRequest{Email: "a@kongu.edu", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, resp.GetSuccess())
	assert.Equal(t, "a@kongu.edu", resp.GetUser().GetEmail())
	assert.True(t, resp.GetUser().GetCreatedAt().AsTime().Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))
}

func TestUnimplemented(t *testing.T) {
	client := dial(t, echoServer{})

	_, err := client.RequestSignup(context.Background(), &RequestSignupRequest{Email: "a@kongu.edu"})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
	_, err = client.VerifySignup(context.Background(), &VerifySignupRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
