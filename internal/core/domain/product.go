package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// Product is a sellable item owned by a distributor, optionally scoped to a company.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	IsActive      bool      `json:"is_active"`
	CompanyID     string    `json:"company_id,omitempty"`
	OwnerID       string    `json:"owner_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CanBeManagedBy reports whether user may modify this product.
// Distributors manage their own products; admins manage any.
func (p *Product) CanBeManagedBy(u *User) bool {
	if u.HasAnyRole(RoleAdmin) {
		return true
	}
	return u.HasAnyRole(RoleDistributor) && p.OwnerID == u.ID
}
