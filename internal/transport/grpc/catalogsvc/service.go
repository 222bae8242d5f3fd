// Package catalogsvc exposes the read-only catalog over gRPC.
//
// Messages are google.protobuf.Struct values so the service needs no
// generated code; field names follow the HTTP JSON shape.
package catalogsvc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "machinery.catalog.v1.CatalogService"

// Method names.
const (
	MethodListProducts     = "ListProducts"
	MethodGetProduct       = "GetProduct"
	MethodListCategories   = "ListCategories"
	MethodFeaturedProducts = "FeaturedProducts"
	MethodRelatedProducts  = "RelatedProducts"
)

// CatalogServer is the server API of the catalog service.
type CatalogServer interface {
	ListProducts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCategories(context.Context, *structpb.Struct) (*structpb.Struct, error)
	FeaturedProducts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RelatedProducts(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(CatalogServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(name string, call unaryCall) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CatalogServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(CatalogServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes the catalog service for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodListProducts, CatalogServer.ListProducts),
		unary(MethodGetProduct, CatalogServer.GetProduct),
		unary(MethodListCategories, CatalogServer.ListCategories),
		unary(MethodFeaturedProducts, CatalogServer.FeaturedProducts),
		unary(MethodRelatedProducts, CatalogServer.RelatedProducts),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "machinery/catalog/v1/catalog.proto",
}

// Register adds srv to s.
func Register(s grpc.ServiceRegistrar, srv CatalogServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Client calls the catalog service.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a Client on cc.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListProducts(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodListProducts, in, opts...)
}

func (c *Client) GetProduct(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetProduct, in, opts...)
}

func (c *Client) ListCategories(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodListCategories, in, opts...)
}

func (c *Client) FeaturedProducts(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodFeaturedProducts, in, opts...)
}

func (c *Client) RelatedProducts(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodRelatedProducts, in, opts...)
}
