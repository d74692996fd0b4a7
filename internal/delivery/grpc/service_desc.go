package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name. Messages are protobuf
// well-known types, so the service needs no generated code.
const ServiceName = "products.v1.ProductService"

const (
	CreateProductMethod = "/" + ServiceName + "/CreateProduct"
	ListProductsMethod  = "/" + ServiceName + "/ListProducts"
	GetProductMethod    = "/" + ServiceName + "/GetProduct"
	UpdateProductMethod = "/" + ServiceName + "/UpdateProduct"
	RemoveProductMethod = "/" + ServiceName + "/RemoveProduct"
)

type ProductServiceServer interface {
	CreateProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetProduct(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error)
	// UpdateProduct addresses the row by the payload's "id" field, a decimal
	// string; the remaining fields are the patch.
	UpdateProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	RemoveProduct(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error)
}

func RegisterProductServiceServer(s grpc.ServiceRegistrar, srv ProductServiceServer) {
	s.RegisterService(&ProductServiceDesc, srv)
}

var ProductServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ProductServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateProduct",
			Handler:    unaryHandler(CreateProductMethod, newStruct, ProductServiceServer.CreateProduct),
		},
		{
			MethodName: "ListProducts",
			Handler:    unaryHandler(ListProductsMethod, newStruct, ProductServiceServer.ListProducts),
		},
		{
			MethodName: "GetProduct",
			Handler:    unaryHandler(GetProductMethod, newInt64Value, ProductServiceServer.GetProduct),
		},
		{
			MethodName: "UpdateProduct",
			Handler:    unaryHandler(UpdateProductMethod, newStruct, ProductServiceServer.UpdateProduct),
		},
		{
			MethodName: "RemoveProduct",
			Handler:    unaryHandler(RemoveProductMethod, newInt64Value, ProductServiceServer.RemoveProduct),
		},
	},
	Streams: []grpc.StreamDesc{},
}

func newStruct() *structpb.Struct           { return new(structpb.Struct) }
func newInt64Value() *wrapperspb.Int64Value { return new(wrapperspb.Int64Value) }

func unaryHandler[Req any](
	fullMethod string,
	newReq func() Req,
	call func(ProductServiceServer, context.Context, Req) (*structpb.Struct, error),
) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ProductServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(ProductServiceServer), ctx, req.(Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
