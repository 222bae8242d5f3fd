package related_products

import (
	"context"
	"strings"

	"github.com/light-bringer/machinery-catalog/internal/app/product/contracts"
	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
)

// Limit is the number of related products returned.
const Limit = 4

// Request identifies the product being viewed.
type Request struct {
	ExcludeID string
	Category  string // optional
}

// Query returns products related to the one being viewed.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new related products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute retrieves up to Limit other products, newest first,
// restricted to req.Category when one is given.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*domain.Product, error) {
	excludeID := strings.TrimSpace(req.ExcludeID)
	if excludeID == "" {
		return nil, domain.ErrExcludeIDRequired
	}

	ps, err := q.readModel.Related(ctx, excludeID, strings.TrimSpace(req.Category), Limit)
	if err != nil {
		return nil, errx.Wrap(errx.KindPersistence, "failed to list related products", err)
	}
	return ps, nil
}
