package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/usersvc/internal/common"
	pb "github.com/dmitrijs2005/usersvc/internal/proto"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	auth        pb.AuthServiceClient
	users       pb.UsersServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}
	if len(md.Get(common.RequestIDHeaderName)) == 0 {
		md.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	ctx = withAccessToken(ctx, s.AccessToken())
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewUsersClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.auth = pb.NewAuthServiceClient(conn)
	s.users = pb.NewUsersServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.users.Health(ctx, &pb.HealthRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() == "" {
		return ErrUnavailable
	}

	return nil
}

// Login authenticates and keeps the issued token for subsequent calls.
func (s *GRPCClient) Login(ctx context.Context, username, password string) (*models.UserProfile, error) {
	resp, err := s.auth.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.SetAccessToken(resp.GetToken())
	return fromPBProfile(resp.GetUser()), nil
}

// Verify checks the current token and replaces it with the freshly issued one.
func (s *GRPCClient) Verify(ctx context.Context) (*models.UserProfile, error) {
	resp, err := s.auth.Verify(ctx, &pb.VerifyRequest{Token: s.AccessToken()})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.SetAccessToken(resp.GetToken())
	return fromPBProfile(resp.GetUser()), nil
}

func (s *GRPCClient) CreateUser(ctx context.Context, in models.NewUser) (*models.ProvisionedUser, error) {
	resp, err := s.users.Create(ctx, toPBCreate(in))
	if err != nil {
		return nil, s.mapError(err)
	}

	out := &models.ProvisionedUser{Password: resp.GetPassword()}
	if p := fromPBProfile(resp.GetUser()); p != nil {
		out.UserProfile = *p
	}
	return out, nil
}

func (s *GRPCClient) ListUsers(ctx context.Context, page, limit int) (*models.UserList, error) {
	resp, err := s.users.FindAll(ctx, &pb.FindAllRequest{Page: int32(page), Limit: int32(limit)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPBList(resp), nil
}

func (s *GRPCClient) GetUser(ctx context.Context, id string) (*models.UserProfile, error) {
	resp, err := s.users.FindByID(ctx, &pb.IDRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPBProfile(resp), nil
}

func (s *GRPCClient) GetUserMeta(ctx context.Context, id string) (*models.UserProfile, error) {
	resp, err := s.users.FindMeta(ctx, &pb.IDRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPBProfile(resp), nil
}

func (s *GRPCClient) FindByUsername(ctx context.Context, username string) (*models.UserProfile, error) {
	resp, err := s.users.FindByUsername(ctx, &pb.UsernameRequest{Username: username})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPBProfile(resp), nil
}

func (s *GRPCClient) FindByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	resp, err := s.users.FindByEmail(ctx, &pb.EmailRequest{Email: email})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPBProfile(resp), nil
}

func (s *GRPCClient) GetSummary(ctx context.Context, id string) (*models.UserSummary, error) {
	resp, err := s.users.FindSummary(ctx, &pb.IDRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPBSummary(resp), nil
}

func (s *GRPCClient) GetSummaries(ctx context.Context, ids []string) ([]models.UserSummary, error) {
	resp, err := s.users.FindSummaryBatch(ctx, &pb.SummaryBatchRequest{Ids: ids})
	if err != nil {
		return nil, s.mapError(err)
	}

	users := make([]models.UserSummary, 0, len(resp.GetUsers()))
	for _, u := range resp.GetUsers() {
		users = append(users, *fromPBSummary(u))
	}
	return users, nil
}

func (s *GRPCClient) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.UserProfile, error) {
	resp, err := s.users.Update(ctx, toPBUpdate(id, patch))
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPBProfile(resp), nil
}

func (s *GRPCClient) RemoveUser(ctx context.Context, id string) (*models.UserProfile, error) {
	resp, err := s.users.Remove(ctx, &pb.IDRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPBProfile(resp), nil
}

func (s *GRPCClient) RestoreUser(ctx context.Context, id string) (*models.UserProfile, error) {
	resp, err := s.users.Restore(ctx, &pb.IDRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPBProfile(resp), nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}

	var kind error
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		kind = ErrUnauthorized
	case codes.NotFound:
		kind = ErrNotFound
	case codes.FailedPrecondition, codes.AlreadyExists:
		kind = ErrConflict
	case codes.InvalidArgument:
		kind = ErrInvalidArgument
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}

	return fmt.Errorf("%w: %s", kind, st.Message())
}
