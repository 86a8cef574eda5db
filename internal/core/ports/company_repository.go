package ports

import (
	"context"

	"github.com/merqado/commerce-api/internal/core/domain"
)

// CompanyRepository reads the company reference collection. Companies are
// seeded out of band; nothing in the API mutates them.
type CompanyRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context) ([]*domain.Company, error)
}
