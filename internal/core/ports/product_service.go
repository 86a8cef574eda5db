package ports

import (
	"context"

	"github.com/merqado/commerce-api/internal/core/domain"
)

// CreateProductInput carries all data needed to create a product.
// Actor is the authenticated principal; ownership is derived from it.
type CreateProductInput struct {
	Name          string
	Description   string
	Price         float64
	StockQuantity int
	CompanyID     string
	Actor         *domain.User
}

// UpdateProductInput carries a partial product update; nil fields are left unchanged.
type UpdateProductInput struct {
	Name          *string
	Description   *string
	Price         *float64
	StockQuantity *int
	IsActive      *bool
	CompanyID     *string
	Actor         *domain.User
}

// ListProductsInput carries the parameters for the public list endpoint.
type ListProductsInput struct {
	CompanyID  string
	ActiveOnly bool
	Page       int
	Limit      int
}

// ListProductsResult is returned by List.
type ListProductsResult struct {
	Items      []*domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductService defines use-case operations for products.
type ProductService interface {
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, in ListProductsInput) (*ListProductsResult, error)
	Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string, actor *domain.User) error
}
