// Package grpc exposes the authentication and user lifecycle services over
// gRPC, using the protobuf API in internal/proto.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/usersvc/internal/logging"
	pb "github.com/dmitrijs2005/usersvc/internal/proto"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"github.com/dmitrijs2005/usersvc/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Authenticator is the part of services.AuthService used by the transport.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*services.AuthResult, error)
	VerifyToken(ctx context.Context, token string) (*services.AuthResult, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// UserManager is the part of services.UserService used by the transport.
type UserManager interface {
	Create(ctx context.Context, in models.NewUser) (*models.ProvisionedUser, error)
	FindAll(ctx context.Context, page models.Pagination, requester *models.User) (*models.UserList, error)
	FindOne(ctx context.Context, id string) (*models.UserProfile, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.UserProfile, error)
	FindOneWithMeta(ctx context.Context, id string) (*models.UserProfile, error)
	FindOneWithSummary(ctx context.Context, id string) (*models.UserSummary, error)
	FindSummary(ctx context.Context, ids []string) ([]models.UserSummary, error)
	Update(ctx context.Context, id string, patch models.UserPatch) (*models.UserProfile, error)
	Remove(ctx context.Context, id string) (*models.UserProfile, error)
	Restore(ctx context.Context, id string) (*models.UserProfile, error)
}

type GRPCServer struct {
	address          string
	auth             Authenticator
	users            UserManager
	logger           logging.Logger
	defaultPageLimit int
}

func NewGRPCServer(a string, l logging.Logger, as Authenticator, us UserManager, defaultPageLimit int) *GRPCServer {
	if defaultPageLimit < 1 {
		defaultPageLimit = 10
	}
	return &GRPCServer{
		address:          a,
		logger:           l.With("module", "grpc_server"),
		auth:             as,
		users:            us,
		defaultPageLimit: defaultPageLimit,
	}
}

// newServer builds the grpc.Server with interceptors and all services registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.requestLogInterceptor, s.accessTokenInterceptor),
	)

	pb.RegisterAuthServiceServer(srv, &authHandler{auth: s.auth})
	pb.RegisterUsersServiceServer(srv, &usersHandler{users: s.users, defaultPageLimit: s.defaultPageLimit})

	hs := health.NewServer()
	hs.SetServingStatus(pb.AuthService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(pb.UsersService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
