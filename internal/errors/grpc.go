package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	detailCode   = "code"
	detailReason = "reason"
	detailMeta   = "meta"
)

// ToGRPCError converts an error to a gRPC status error
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Check if it's already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if customErr.Reason == "" && len(customErr.Meta) == 0 {
		return st.Err()
	}

	details, detailErr := structpb.NewStruct(map[string]interface{}{
		detailCode:   string(customErr.Code),
		detailReason: string(customErr.Reason),
		detailMeta:   protoSafeMeta(customErr.Meta),
	})
	if detailErr != nil {
		return st.Err()
	}
	if withDetails, detailErr := st.WithDetails(details); detailErr == nil {
		st = withDetails
	}

	return st.Err()
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		details, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		fields := details.AsMap()
		if reason, ok := fields[detailReason].(string); ok {
			customErr.Reason = Reason(reason)
		}
		if meta, ok := fields[detailMeta].(map[string]interface{}); ok && len(meta) > 0 {
			customErr.Meta = meta
		}
		break
	}

	return customErr
}

// protoSafeMeta converts metadata into values structpb accepts
func protoSafeMeta(meta map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(meta))
	for k, v := range meta {
		if _, err := structpb.NewValue(v); err != nil {
			out[k] = fmt.Sprint(v)
			continue
		}
		out[k] = v
	}
	return out
}
