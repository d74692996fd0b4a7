package domain

import (
	"errors"
	"math"
	"time"
)

type Product struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	Available bool      `gorm:"not null;default:true;index" json:"available"` // false once soft deleted
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Product) TableName() string { return "products" }

type CreateProductRequest struct {
	Name  string  `json:"name"  binding:"required"`
	Price float64 `json:"price" binding:"min=0"`
}

// UpdateProductRequest is a partial update. ID is accepted so that callers can
// send a whole product back, but it never reaches the store.
type UpdateProductRequest struct {
	ID    *int64   `json:"id,omitempty"`
	Name  *string  `json:"name,omitempty"  binding:"omitempty,min=1"`
	Price *float64 `json:"price,omitempty" binding:"omitempty,min=0"`
}

// Changes returns the column updates carried by the request.
func (r UpdateProductRequest) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Price != nil {
		changes["price"] = *r.Price
	}
	return changes
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type PaginationQuery struct {
	Page  int `form:"page"  json:"page,omitempty"  binding:"omitempty,min=1"`
	Limit int `form:"limit" json:"limit,omitempty" binding:"omitempty,min=1"`
}

// WithDefaults fills unset fields with DefaultPage and DefaultLimit.
func (q PaginationQuery) WithDefaults() PaginationQuery {
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	return q
}

var ErrPageOutOfRange = errors.New("page and limit exceed the addressable range")

// Offset is the number of rows skipped before the page starts. Call it on a
// query that has been through WithDefaults.
func (q PaginationQuery) Offset() (int, error) {
	if q.Page < 1 || q.Limit < 1 {
		return 0, ErrPageOutOfRange
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		return 0, ErrPageOutOfRange
	}
	return (q.Page - 1) * q.Limit, nil
}

type PageMeta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	LastPage int   `json:"lastPage"`
}

type ProductPage struct {
	Data []Product `json:"data"`
	Meta PageMeta  `json:"meta"`
}

// LastPage is ceil(total/limit); zero when there is nothing to page through.
func LastPage(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	l := int64(limit)
	last := total / l
	if total%l != 0 {
		last++
	}
	return int(last)
}
