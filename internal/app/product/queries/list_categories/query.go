package list_categories

import (
	"context"

	"github.com/light-bringer/machinery-catalog/internal/app/product/contracts"
	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
)

// Query returns every category with its product count.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list categories query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute retrieves the category counts, ordered by name.
func (q *Query) Execute(ctx context.Context) ([]domain.Category, error) {
	cats, err := q.readModel.CategoryCounts(ctx)
	if err != nil {
		return nil, errx.Wrap(errx.KindPersistence, "failed to list categories", err)
	}
	return cats, nil
}
