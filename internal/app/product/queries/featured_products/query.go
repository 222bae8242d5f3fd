package featured_products

import (
	"context"

	"github.com/light-bringer/machinery-catalog/internal/app/product/contracts"
	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
)

// Limit is the number of products shown in the featured strip.
const Limit = 8

// Query returns the newest featured products.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new featured products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute retrieves up to Limit featured products, newest first.
func (q *Query) Execute(ctx context.Context) ([]*domain.Product, error) {
	ps, err := q.readModel.Featured(ctx, Limit)
	if err != nil {
		return nil, errx.Wrap(errx.KindPersistence, "failed to list featured products", err)
	}
	return ps, nil
}
