package grpc

import (
	"errors"

	"github.com/dmitrijs2005/usersvc/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var statusCodes = []struct {
	kind error
	code codes.Code
}{
	{common.ErrorUnauthorized, codes.Unauthenticated},
	{common.ErrorNotFound, codes.NotFound},
	{common.ErrorConflict, codes.FailedPrecondition},
	{common.ErrorBadRequest, codes.InvalidArgument},
	{common.ErrorValidation, codes.InvalidArgument},
}

// toStatus converts a service error into a gRPC status. Only the categorized
// message reaches the caller; uncategorized errors become Internal.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	for _, sc := range statusCodes {
		if !errors.Is(err, sc.kind) {
			continue
		}
		var e *common.Error
		if errors.As(err, &e) {
			return status.Error(sc.code, e.Message)
		}
		return status.Error(sc.code, sc.kind.Error())
	}

	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
