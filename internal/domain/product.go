// domain/product.go
package domain

import (
	"context"
	"errors"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the store the product service talks to. Only
// CreateProduct and UpdateProduct see non-live rows.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *Product) (*Product, error)
	CountAvailable(ctx context.Context) (int64, error)
	ListAvailable(ctx context.Context, offset, limit int) ([]Product, error)
	GetAvailableByID(ctx context.Context, id int64) (*Product, error)

	UpdateProduct(ctx context.Context, id int64, changes map[string]interface{}) (*Product, error)
}
