package contracts

import (
	"context"

	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
)

// ProductRepository defines the write side of product persistence.
type ProductRepository interface {
	// GetByID returns domain.ErrProductNotFound when no row exists.
	GetByID(ctx context.Context, productID string) (*domain.Product, error)

	// Upsert inserts or fully replaces the product keyed by its ID.
	Upsert(ctx context.Context, product *domain.Product) error

	// Delete hard-deletes the product. Deleting a missing row is not an error.
	Delete(ctx context.Context, productID string) error
}
