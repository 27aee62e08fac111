package common

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCStatus lets status.FromError recognise a CommandError directly.
func (e *CommandError) GRPCStatus() *status.Status {
	return status.New(e.grpcCode(), e.Message)
}

func (e *CommandError) grpcCode() codes.Code {
	switch e.Code {
	case StatusInvalidArgument:
		return codes.InvalidArgument
	case StatusFailedPrecondition:
		return codes.FailedPrecondition
	case StatusNotFound:
		return codes.NotFound
	default:
		return codes.Unknown
	}
}

// MapCommandError converts a CommandError to a gRPC status error.
// Non-CommandError values are wrapped as Internal.
func MapCommandError(err error) error {
	if err == nil {
		return nil
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return status.Error(cmdErr.grpcCode(), cmdErr.Message)
	}
	return status.Errorf(codes.Internal, "internal error: %v", err)
}
