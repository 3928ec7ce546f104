package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "bestiary.api.v1alpha1.BestiaryService"

// Full method names
const (
	MethodGetMonster     = "/" + ServiceName + "/GetMonster"
	MethodSearchMonsters = "/" + ServiceName + "/SearchMonsters"
	MethodListTemplates  = "/" + ServiceName + "/ListTemplates"
	MethodApplyTemplates = "/" + ServiceName + "/ApplyTemplates"
	MethodRollHitPoints  = "/" + ServiceName + "/RollHitPoints"
	MethodRollAttack     = "/" + ServiceName + "/RollAttack"
)

// BestiaryServiceServer is the server API for the bestiary service.
// Requests and responses are free-form structs.
type BestiaryServiceServer interface {
	GetMonster(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SearchMonsters(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListTemplates(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ApplyTemplates(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollHitPoints(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollAttack(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterBestiaryServiceServer registers srv on s
func RegisterBestiaryServiceServer(s grpc.ServiceRegistrar, srv BestiaryServiceServer) {
	s.RegisterService(&BestiaryServiceDesc, srv)
}

type unaryMethod func(BestiaryServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(
		srv interface{},
		ctx context.Context,
		dec func(interface{}) error,
		interceptor grpc.UnaryServerInterceptor,
	) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(BestiaryServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(BestiaryServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// BestiaryServiceDesc is the grpc.ServiceDesc for the bestiary service
var BestiaryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BestiaryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetMonster",
			Handler:    unaryHandler(MethodGetMonster, BestiaryServiceServer.GetMonster),
		},
		{
			MethodName: "SearchMonsters",
			Handler:    unaryHandler(MethodSearchMonsters, BestiaryServiceServer.SearchMonsters),
		},
		{
			MethodName: "ListTemplates",
			Handler:    unaryHandler(MethodListTemplates, BestiaryServiceServer.ListTemplates),
		},
		{
			MethodName: "ApplyTemplates",
			Handler:    unaryHandler(MethodApplyTemplates, BestiaryServiceServer.ApplyTemplates),
		},
		{
			MethodName: "RollHitPoints",
			Handler:    unaryHandler(MethodRollHitPoints, BestiaryServiceServer.RollHitPoints),
		},
		{
			MethodName: "RollAttack",
			Handler:    unaryHandler(MethodRollAttack, BestiaryServiceServer.RollAttack),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bestiary/api/v1alpha1/bestiary.proto",
}

// BestiaryServiceClient is the client API for the bestiary service
type BestiaryServiceClient interface {
	Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type bestiaryServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBestiaryServiceClient creates a client on cc
func NewBestiaryServiceClient(cc grpc.ClientConnInterface) BestiaryServiceClient {
	return &bestiaryServiceClient{cc: cc}
}

// Call invokes one of the Method* full method names
func (c *bestiaryServiceClient) Call(
	ctx context.Context,
	method string,
	in *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
