package grpc

import (
	"context"
	"errors"

	"products_service/internal/domain"
	"products_service/internal/usecase"
	"products_service/pkg/db"

	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type ProductHandler struct {
	productUseCase usecase.ProductUseCase
	log            *logrus.Logger
}

var _ ProductServiceServer = (*ProductHandler)(nil)

func NewProductHandler(puc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		productUseCase: puc,
		log:            logger,
	}
}

// decodeRequest decodes and validates a payload with the same binding rules
// the HTTP transport uses.
func decodeRequest(in *structpb.Struct, dst interface{}) error {
	if err := DecodeStruct(in, dst); err != nil {
		return status.Errorf(codes.InvalidArgument, "Invalid payload: %v", err)
	}
	if err := binding.Validator.ValidateStruct(dst); err != nil {
		return status.Errorf(codes.InvalidArgument, "Invalid payload: %v", err)
	}
	return nil
}

func productReply(p *domain.Product) (*structpb.Struct, error) {
	out, err := ProductToStruct(p)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "Failed to encode product: %v", err)
	}
	return out, nil
}

func (h *ProductHandler) CreateProduct(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req domain.CreateProductRequest
	if err := decodeRequest(in, &req); err != nil {
		h.log.Warnf("gRPC Handler: CreateProduct rejected: %v", err)
		return nil, err
	}
	h.log.Infof("gRPC Handler: Received CreateProduct request: Name=%s", req.Name)

	created, err := h.productUseCase.Create(ctx, req)
	if err != nil {
		h.log.Errorf("gRPC Handler: CreateProduct use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return productReply(created)
}

func (h *ProductHandler) ListProducts(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var query domain.PaginationQuery
	if err := decodeRequest(in, &query); err != nil {
		h.log.Warnf("gRPC Handler: ListProducts rejected: %v", err)
		return nil, err
	}
	h.log.Infof("gRPC Handler: Received ListProducts request: Page=%d, Limit=%d", query.Page, query.Limit)

	page, err := h.productUseCase.FindAll(ctx, query)
	if err != nil {
		h.log.Errorf("gRPC Handler: ListProducts use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}

	out, err := PageToStruct(page)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "Failed to encode products: %v", err)
	}
	return out, nil
}

func (h *ProductHandler) GetProduct(ctx context.Context, in *wrapperspb.Int64Value) (*structpb.Struct, error) {
	id := in.GetValue()
	if id <= 0 {
		return nil, status.Error(codes.InvalidArgument, "Invalid product ID")
	}

	product, err := h.productUseCase.FindOne(ctx, id)
	if err != nil {
		h.log.Warnf("gRPC Handler: GetProduct use case error for ID %d: %v", id, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return productReply(product)
}

func (h *ProductHandler) UpdateProduct(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var msg UpdateProductMessage
	if err := decodeRequest(in, &msg); err != nil {
		h.log.Warnf("gRPC Handler: UpdateProduct rejected: %v", err)
		return nil, err
	}
	if msg.ID <= 0 {
		return nil, status.Error(codes.InvalidArgument, "Valid product ID is required for update")
	}
	id := msg.ID
	h.log.Infof("gRPC Handler: Received UpdateProduct request: ID=%d", id)

	updated, err := h.productUseCase.Update(ctx, id, msg.UpdateProductRequest)
	if err != nil {
		h.log.Errorf("gRPC Handler: UpdateProduct use case error for ID %d: %v", id, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return productReply(updated)
}

func (h *ProductHandler) RemoveProduct(ctx context.Context, in *wrapperspb.Int64Value) (*structpb.Struct, error) {
	id := in.GetValue()
	if id <= 0 {
		return nil, status.Error(codes.InvalidArgument, "Invalid product ID")
	}
	h.log.Infof("gRPC Handler: Received RemoveProduct request: ID=%d", id)

	removed, err := h.productUseCase.Remove(ctx, id)
	if err != nil {
		h.log.Warnf("gRPC Handler: RemoveProduct use case error for ID %d: %v", id, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return productReply(removed)
}

func mapDomainErrorToGrpcStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrProductNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrPageOutOfRange):
		return status.Error(codes.InvalidArgument, err.Error())
	case db.IsUniqueViolation(err):
		return status.Error(codes.AlreadyExists, err.Error())
	case db.IsIntegrityViolation(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, "Internal server error")
	}
}
