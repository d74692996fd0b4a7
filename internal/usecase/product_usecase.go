package usecase

import (
	"context"

	"products_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	Create(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error)
	FindAll(ctx context.Context, query domain.PaginationQuery) (*domain.ProductPage, error)
	FindOne(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, id int64, req domain.UpdateProductRequest) (*domain.Product, error)
	Remove(ctx context.Context, id int64) (*domain.Product, error)
}

type productUseCase struct {
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewProductUseCase(repo domain.ProductRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo: repo,
		log:         logger,
	}
}

func (uc *productUseCase) Create(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	uc.log.Infof("Use Case: Attempting to create product '%s'", req.Name)
	created, err := uc.productRepo.CreateProduct(ctx, &domain.Product{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", req.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %d", created.Name, created.ID)
	return created, nil
}

func (uc *productUseCase) FindAll(ctx context.Context, query domain.PaginationQuery) (*domain.ProductPage, error) {
	query = query.WithDefaults()
	offset, err := query.Offset()
	if err != nil {
		uc.log.Warnf("Use Case: Rejected page %d with limit %d: %v", query.Page, query.Limit, err)
		return nil, err
	}

	total, err := uc.productRepo.CountAvailable(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to count products: %v", err)
		return nil, err
	}

	products, err := uc.productRepo.ListAvailable(ctx, offset, query.Limit)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, err
	}

	uc.log.Infof("Use Case: Retrieved %d of %d products (page: %d, limit: %d)", len(products), total, query.Page, query.Limit)
	return &domain.ProductPage{
		Data: products,
		Meta: domain.PageMeta{
			Total:    total,
			Page:     query.Page,
			LastPage: domain.LastPage(total, query.Limit),
		},
	}, nil
}

func (uc *productUseCase) FindOne(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := uc.productRepo.GetAvailableByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %d: %v", id, err)
		return nil, err
	}
	return product, nil
}

// Update checks that the product is live, then writes the patch. The two
// calls are not atomic: a concurrent Remove in between is not detected.
func (uc *productUseCase) Update(ctx context.Context, id int64, req domain.UpdateProductRequest) (*domain.Product, error) {
	current, err := uc.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := req.Changes()
	if len(changes) == 0 {
		uc.log.Infof("Use Case: No fields to update for product ID %d", id)
		return current, nil
	}

	uc.log.Infof("Use Case: Attempting update for product ID %d with fields: %v", id, changes)
	updated, err := uc.productRepo.UpdateProduct(ctx, id, changes)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update product ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product updated successfully for ID %d", updated.ID)
	return updated, nil
}

// Remove soft deletes a live product and returns it with Available false.
func (uc *productUseCase) Remove(ctx context.Context, id int64) (*domain.Product, error) {
	if _, err := uc.FindOne(ctx, id); err != nil {
		return nil, err
	}

	removed, err := uc.productRepo.UpdateProduct(ctx, id, map[string]interface{}{"available": false})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to remove product ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product ID %d marked unavailable", id)
	return removed, nil
}
