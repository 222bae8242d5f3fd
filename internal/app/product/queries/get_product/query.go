package get_product

import (
	"context"

	"github.com/light-bringer/machinery-catalog/internal/app/product/contracts"
	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
)

// Request contains the product ID to retrieve.
type Request struct {
	ProductID string
}

// Query handles the get product query use case.
type Query struct {
	repo contracts.ProductRepository
}

// NewQuery creates a new get product query.
func NewQuery(repo contracts.ProductRepository) *Query {
	return &Query{
		repo: repo,
	}
}

// Execute retrieves a product by ID.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.Product, error) {
	p, err := q.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		if errx.KindOf(err) == errx.KindNotFound {
			return nil, err
		}
		return nil, errx.Wrap(errx.KindPersistence, "failed to load product", err)
	}
	return p, nil
}
