package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// StateServiceName is the fully qualified gRPC service name
const StateServiceName = "glamour.api.v1alpha1.StateService"

// StateServiceServer is the server API for the state service. Requests
// and responses are well-known protobuf types; structured bodies are
// google.protobuf.Struct values holding the messages in messages.go.
type StateServiceServer interface {
	ReportActor(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UntrackActor(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	GetActorState(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ListActors(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	ApplyDesign(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetLock(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ReleaseFields(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EditActor(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SaveDesign(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CaptureDesign(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDesign(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ListDesigns(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	DeleteDesign(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	BindDesign(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UnbindDesign(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	ListBindings(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

// StateServiceDesc describes the state service for grpc.Server
var StateServiceDesc = grpc.ServiceDesc{
	ServiceName: StateServiceName,
	HandlerType: (*StateServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		method("ReportActor", StateServiceServer.ReportActor),
		method("UntrackActor", StateServiceServer.UntrackActor),
		method("GetActorState", StateServiceServer.GetActorState),
		method("ListActors", StateServiceServer.ListActors),
		method("ApplyDesign", StateServiceServer.ApplyDesign),
		method("SetLock", StateServiceServer.SetLock),
		method("ReleaseFields", StateServiceServer.ReleaseFields),
		method("EditActor", StateServiceServer.EditActor),
		method("SaveDesign", StateServiceServer.SaveDesign),
		method("CaptureDesign", StateServiceServer.CaptureDesign),
		method("GetDesign", StateServiceServer.GetDesign),
		method("ListDesigns", StateServiceServer.ListDesigns),
		method("DeleteDesign", StateServiceServer.DeleteDesign),
		method("BindDesign", StateServiceServer.BindDesign),
		method("UnbindDesign", StateServiceServer.UnbindDesign),
		method("ListBindings", StateServiceServer.ListBindings),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterStateServiceServer registers srv on s
func RegisterStateServiceServer(s grpc.ServiceRegistrar, srv StateServiceServer) {
	s.RegisterService(&StateServiceDesc, srv)
}

func fullMethod(name string) string {
	return "/" + StateServiceName + "/" + name
}

func method[Req any, Resp proto.Message](
	name string,
	call func(StateServiceServer, context.Context, *Req) (Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(StateServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(StateServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
