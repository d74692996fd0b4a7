package clients

import (
	"context"
	"fmt"

	productgrpc "products_service/internal/delivery/grpc"
	"products_service/internal/domain"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type ProductServiceClient interface {
	CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error)
	ListProducts(ctx context.Context, query domain.PaginationQuery) (*domain.ProductPage, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, req domain.UpdateProductRequest) (*domain.Product, error)
	RemoveProduct(ctx context.Context, id int64) (*domain.Product, error)

	Close() error
}

type productGRPCClient struct {
	conn *grpc.ClientConn
	log  *logrus.Logger
}

// NewProductServiceClient connects lazily to target over plaintext. Extra
// options are appended after the defaults.
func NewProductServiceClient(target string, logger *logrus.Logger, opts ...grpc.DialOption) (ProductServiceClient, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		logger.Errorf("ProductClient: Failed to create client for %s: %v", target, err)
		return nil, fmt.Errorf("failed to create product service client for %s: %w", target, err)
	}
	logger.Infof("ProductClient: gRPC client created for %s", target)

	return &productGRPCClient{
		conn: conn,
		log:  logger,
	}, nil
}

func (c *productGRPCClient) Close() error {
	if c.conn != nil {
		c.log.Info("ProductClient: Closing gRPC connection")
		return c.conn.Close()
	}
	return nil
}

func (c *productGRPCClient) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	c.log.Debugf("ProductClient(gRPC): Calling CreateProduct: Name=%s", req.Name)
	in, err := productgrpc.EncodeStruct(req)
	if err != nil {
		return nil, err
	}
	return c.invokeProduct(ctx, productgrpc.CreateProductMethod, in)
}

func (c *productGRPCClient) ListProducts(ctx context.Context, query domain.PaginationQuery) (*domain.ProductPage, error) {
	c.log.Debugf("ProductClient(gRPC): Calling ListProducts: Page=%d, Limit=%d", query.Page, query.Limit)
	in, err := productgrpc.EncodeStruct(query)
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, productgrpc.ListProductsMethod, in, out); err != nil {
		return nil, fromStatus(err)
	}
	return productgrpc.StructToPage(out)
}

func (c *productGRPCClient) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	c.log.Debugf("ProductClient(gRPC): Calling GetProduct: ID=%d", id)
	return c.invokeProduct(ctx, productgrpc.GetProductMethod, wrapperspb.Int64(id))
}

func (c *productGRPCClient) UpdateProduct(ctx context.Context, id int64, req domain.UpdateProductRequest) (*domain.Product, error) {
	c.log.Debugf("ProductClient(gRPC): Calling UpdateProduct: ID=%d", id)
	in, err := productgrpc.UpdateRequestToStruct(id, req)
	if err != nil {
		return nil, err
	}
	return c.invokeProduct(ctx, productgrpc.UpdateProductMethod, in)
}

func (c *productGRPCClient) RemoveProduct(ctx context.Context, id int64) (*domain.Product, error) {
	c.log.Debugf("ProductClient(gRPC): Calling RemoveProduct: ID=%d", id)
	return c.invokeProduct(ctx, productgrpc.RemoveProductMethod, wrapperspb.Int64(id))
}

func (c *productGRPCClient) invokeProduct(ctx context.Context, method string, in interface{}) (*domain.Product, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, method, in, out); err != nil {
		return nil, fromStatus(err)
	}
	return productgrpc.StructToProduct(out)
}

// fromStatus turns a NotFound status back into domain.ErrProductNotFound.
func fromStatus(err error) error {
	if st, ok := status.FromError(err); ok && st.Code() == codes.NotFound {
		return fmt.Errorf("%s: %w", st.Message(), domain.ErrProductNotFound)
	}
	return err
}
