package mocks

import (
	"context"

	"products_service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockProductUseCase struct {
	mock.Mock
}

func (m *MockProductUseCase) Create(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductUseCase) FindAll(ctx context.Context, query domain.PaginationQuery) (*domain.ProductPage, error) {
	args := m.Called(ctx, query)
	if res := args.Get(0); res != nil {
		return res.(*domain.ProductPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductUseCase) FindOne(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductUseCase) Update(ctx context.Context, id int64, req domain.UpdateProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, id, req)
	if res := args.Get(0); res != nil {
		return res.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductUseCase) Remove(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}
