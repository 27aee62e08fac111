package common

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapCommandError_invalidArgument_mapsToGRPCInvalidArgument(t *testing.T) {
	err := MapCommandError(NewInvalidArgument("bad field"))
	st, ok := status.FromError(err)
	if !ok {
		t.Fatal("expected gRPC status error")
	}
	if st.Code() != codes.InvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", st.Code())
	}
	if st.Message() != "bad field" {
		t.Errorf("expected 'bad field', got %q", st.Message())
	}
}

func TestMapCommandError_failedPrecondition_mapsToGRPCFailedPrecondition(t *testing.T) {
	err := MapCommandError(NewFailedPrecondition("not ready"))
	st, ok := status.FromError(err)
	if !ok {
		t.Fatal("expected gRPC status error")
	}
	if st.Code() != codes.FailedPrecondition {
		t.Errorf("expected FailedPrecondition, got %v", st.Code())
	}
}

func TestMapCommandError_wrappedNotFound_mapsToGRPCNotFound(t *testing.T) {
	err := MapCommandError(fmt.Errorf("close: %w", NewNotFound("no active order")))
	if status.Code(err) != codes.NotFound {
		t.Errorf("expected NotFound, got %v", status.Code(err))
	}
}

func TestMapCommandError_nonCommandError_mapsToInternal(t *testing.T) {
	err := MapCommandError(errors.New("something broke"))
	st, ok := status.FromError(err)
	if !ok {
		t.Fatal("expected gRPC status error")
	}
	if st.Code() != codes.Internal {
		t.Errorf("expected Internal, got %v", st.Code())
	}
}

func TestMapCommandError_nil_returnsNil(t *testing.T) {
	if MapCommandError(nil) != nil {
		t.Error("expected nil")
	}
}

func TestCommandError_GRPCStatus_recognisedByFromError(t *testing.T) {
	st, ok := status.FromError(NewFailedPrecondition("order is empty"))
	if !ok {
		t.Fatal("expected status.FromError to recognise CommandError")
	}
	if st.Code() != codes.FailedPrecondition {
		t.Errorf("expected FailedPrecondition, got %v", st.Code())
	}
	if st.Message() != "order is empty" {
		t.Errorf("unexpected message %q", st.Message())
	}
}
