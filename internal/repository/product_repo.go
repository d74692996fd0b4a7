package repository

import (
	"context"
	"errors"
	"fmt"

	"products_service/internal/domain"
	"products_service/pkg/db"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postgresProductRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewPostgresProductRepository(gormDB *gorm.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:  gormDB,
		log: logger,
	}
}

func (r *postgresProductRepository) live(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&domain.Product{}).Where("available = ?", true)
}

func (r *postgresProductRepository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	product.ID = 0
	product.Available = true

	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if db.IsIntegrityViolation(err) {
			r.log.Warnf("Repository: Constraint violation creating product '%s': %v", product.Name, err)
		} else {
			r.log.Errorf("Repository: Failed to create product '%s': %v", product.Name, err)
		}
		return nil, fmt.Errorf("could not create product: %w", err)
	}
	r.log.Infof("Repository: Product created with ID: %d, Name: %s", product.ID, product.Name)
	return product, nil
}

func (r *postgresProductRepository) CountAvailable(ctx context.Context) (int64, error) {
	var total int64
	if err := r.live(ctx).Count(&total).Error; err != nil {
		r.log.Errorf("Repository: Failed to count available products: %v", err)
		return 0, fmt.Errorf("could not count products: %w", err)
	}
	return total, nil
}

// ListAvailable returns live products in store order; no ORDER BY is applied.
func (r *postgresProductRepository) ListAvailable(ctx context.Context, offset, limit int) ([]domain.Product, error) {
	products := []domain.Product{}
	if err := r.live(ctx).Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		r.log.Errorf("Repository: Failed to list products (offset %d, limit %d): %v", offset, limit, err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	r.log.Debugf("Repository: Retrieved %d products (offset: %d, limit: %d)", len(products), offset, limit)
	return products, nil
}

func (r *postgresProductRepository) GetAvailableByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	err := r.live(ctx).Where("id = ?", id).Take(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warnf("Repository: Product with ID %d not found", id)
			return nil, fmt.Errorf("product with id %d: %w", id, domain.ErrProductNotFound)
		}
		r.log.Errorf("Repository: Failed to get product by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}
	return &product, nil
}

// UpdateProduct applies changes to the row with the given id whether or not it
// is live, and returns the row as written.
func (r *postgresProductRepository) UpdateProduct(ctx context.Context, id int64, changes map[string]interface{}) (*domain.Product, error) {
	columns := make(map[string]interface{}, len(changes))
	for column, value := range changes {
		if column != "id" {
			columns[column] = value
		}
	}

	var product domain.Product
	result := r.db.WithContext(ctx).
		Model(&product).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		if db.IsIntegrityViolation(result.Error) {
			r.log.Warnf("Repository: Constraint violation updating product ID %d: %v", id, result.Error)
		} else {
			r.log.Errorf("Repository: Failed to update product ID %d: %v", id, result.Error)
		}
		return nil, fmt.Errorf("could not update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.log.Warnf("Repository: Product with ID %d not found for update (0 rows affected)", id)
		return nil, fmt.Errorf("product with id %d: %w", id, domain.ErrProductNotFound)
	}

	r.log.Infof("Repository: Product ID %d updated (%d fields)", id, len(columns))
	return &product, nil
}
