package catalogsvc

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
)

// mapErrorToGRPC converts an application error to a gRPC status.
// Only the public message is sent to the caller.
func mapErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	switch errx.KindOf(err) {
	case errx.KindValidation:
		return status.Error(codes.InvalidArgument, errx.PublicMessage(err))
	case errx.KindNotFound:
		return status.Error(codes.NotFound, errx.PublicMessage(err))
	case errx.KindUnauthorized:
		return status.Error(codes.Unauthenticated, errx.PublicMessage(err))
	case errx.KindConflict:
		return status.Error(codes.AlreadyExists, errx.PublicMessage(err))
	case errx.KindExternal:
		return status.Error(codes.Unavailable, errx.PublicMessage(err))
	default:
		return status.Error(codes.Internal, errx.SystemErrorMessage)
	}
}
