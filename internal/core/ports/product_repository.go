package ports

import (
	"context"

	"github.com/merqado/commerce-api/internal/core/domain"
)

// ListProductsFilter carries all query parameters for listing products.
type ListProductsFilter struct {
	CompanyID  string // optional: scope to one company
	OwnerID    string // optional: scope to one distributor
	ActiveOnly bool
	Page       int // 1-based
	Limit      int // max rows per page (capped by service)
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns a page of products matching filter and the total count.
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
