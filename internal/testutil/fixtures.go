package testutil

import (
	"time"

	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
)

// ProductBuilder helps create products for tests with a fluent interface.
type ProductBuilder struct {
	p domain.Product
}

// NewProductBuilder creates a builder with valid defaults.
func NewProductBuilder(id string) *ProductBuilder {
	return &ProductBuilder{p: domain.Product{
		ID:          id,
		Name:        "NylonSpinner 3000 Pro",
		Description: "High-speed nylon spinning machine",
		Category:    "Spinning Machines",
		InStock:     true,
		CreatedAt:   FixedTime,
		UpdatedAt:   FixedTime,
	}}
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.p.Name = name
	return b
}

func (b *ProductBuilder) WithCategory(category string) *ProductBuilder {
	b.p.Category = category
	return b
}

func (b *ProductBuilder) WithPrice(price, original string) *ProductBuilder {
	if price != "" {
		b.p.Price = &price
	}
	if original != "" {
		b.p.OriginalPrice = &original
	}
	return b
}

func (b *ProductBuilder) WithMedia(kind domain.MediaKind, url, assetID string) *ProductBuilder {
	b.p.Media = domain.Media{Kind: kind, URL: url, AssetID: assetID}
	return b
}

func (b *ProductBuilder) Featured() *ProductBuilder {
	b.p.Featured = true
	return b
}

func (b *ProductBuilder) CreatedAt(t time.Time) *ProductBuilder {
	b.p.CreatedAt = t
	b.p.UpdatedAt = t
	return b
}

// Build returns a copy of the product built so far.
func (b *ProductBuilder) Build() *domain.Product {
	return b.p.Clone()
}
