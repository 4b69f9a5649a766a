package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// ServiceName is the fully qualified gRPC service name
	ServiceName = "itemconverter.v1alpha1.ItemConverterService"

	// ConvertItemFullMethodName is the full method name of ConvertItem
	ConvertItemFullMethodName = "/" + ServiceName + "/ConvertItem"
)

// ItemConverterServiceServer is the server API for the item converter service.
// Messages are well-known Struct values so no generated code is needed.
type ItemConverterServiceServer interface {
	ConvertItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// ItemConverterServiceDesc is the grpc.ServiceDesc for the item converter service
var ItemConverterServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ItemConverterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ConvertItem",
			Handler:    convertItemHandler,
		},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterItemConverterServiceServer registers srv with the gRPC server
func RegisterItemConverterServiceServer(s grpc.ServiceRegistrar, srv ItemConverterServiceServer) {
	s.RegisterService(&ItemConverterServiceDesc, srv)
}

func convertItemHandler(
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
		return srv.(ItemConverterServiceServer).ConvertItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConvertItemFullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ItemConverterServiceServer).ConvertItem(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// ItemConverterServiceClient is the client API for the item converter service
type ItemConverterServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewItemConverterServiceClient creates a client on top of a connection
func NewItemConverterServiceClient(cc grpc.ClientConnInterface) *ItemConverterServiceClient {
	return &ItemConverterServiceClient{cc: cc}
}

// ConvertItem calls the ConvertItem method
func (c *ItemConverterServiceClient) ConvertItem(
	ctx context.Context,
	req *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ConvertItemFullMethodName, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
