package list_products

import (
	"context"

	"github.com/light-bringer/machinery-catalog/internal/app/product/catalog"
	"github.com/light-bringer/machinery-catalog/internal/app/product/contracts"
	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
)

// Request contains filtering, sorting and pagination parameters.
type Request struct {
	Filter   catalog.Request
	Page     int
	PageSize int
}

// Query handles the list products query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute loads the catalog and returns one page of the filtered, sorted view.
func (q *Query) Execute(ctx context.Context, req *Request) (catalog.Page[*domain.Product], error) {
	all, err := q.readModel.List(ctx)
	if err != nil {
		return catalog.Page[*domain.Product]{}, errx.Wrap(errx.KindPersistence, "failed to list products", err)
	}

	view := catalog.Apply(all, req.Filter)
	return catalog.Paginate(view, req.Page, req.PageSize), nil
}
