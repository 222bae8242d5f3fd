package contracts

import (
	"context"

	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
)

// ReadModel defines the product queries used by the storefront and admin views.
type ReadModel interface {
	// List returns every product, newest first.
	List(ctx context.Context) ([]*domain.Product, error)

	// CategoryCounts returns each category with its product count, ordered by name.
	CategoryCounts(ctx context.Context) ([]domain.Category, error)

	// Featured returns up to limit featured products, newest first.
	Featured(ctx context.Context, limit int) ([]*domain.Product, error)

	// Related returns up to limit products other than excludeID, newest first.
	// An empty category means any category.
	Related(ctx context.Context, excludeID, category string, limit int) ([]*domain.Product, error)
}
