package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/usersvc/internal/common"
	"github.com/dmitrijs2005/usersvc/internal/logging"
	pb "github.com/dmitrijs2005/usersvc/internal/proto"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const requesterKey ctxKey = "requester"

// RequesterFromContext returns the authenticated caller, or nil.
func RequesterFromContext(ctx context.Context) *models.User {
	u, _ := ctx.Value(requesterKey).(*models.User)
	return u
}

func metadataValue(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// requestLogInterceptor tags the call with a request id, taken from the
// incoming metadata or generated, and logs its outcome.
func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	id := metadataValue(ctx, common.RequestIDHeaderName)
	if id == "" {
		id = uuid.NewString()
	}
	ctx = logging.WithRequestID(ctx, id)
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, id))

	start := time.Now()
	resp, err := handler(ctx, req)

	st := status.Convert(err)
	args := []any{"method", info.FullMethod, "code", st.Code().String(), "duration", time.Since(start)}
	if err != nil {
		s.logger.Warn(ctx, "request failed", append(args, "error", st.Message())...)
	} else {
		s.logger.Info(ctx, "request handled", args...)
	}

	return resp, err
}

// accessTokenInterceptor resolves the caller of UsersService methods from the
// access token, when one is sent. An invalid token rejects the call.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if !strings.HasPrefix(info.FullMethod, "/"+pb.UsersService_ServiceDesc.ServiceName+"/") {
		return handler(ctx, req)
	}

	accessToken := metadataValue(ctx, common.AccessTokenHeaderName)
	if accessToken == "" {
		return handler(ctx, req)
	}

	user, err := s.auth.Authenticate(ctx, accessToken)
	if err != nil {
		return nil, toStatus(err)
	}

	return handler(context.WithValue(ctx, requesterKey, user), req)
}
