package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data is the Spanner row of the products table.
type Data struct {
	ProductID      string             `spanner:"product_id"`
	Name           string             `spanner:"name"`
	Description    string             `spanner:"description"`
	Category       string             `spanner:"category"`
	Price          spanner.NullString `spanner:"price"`
	OriginalPrice  spanner.NullString `spanner:"original_price"`
	MediaKind      spanner.NullString `spanner:"media_kind"`
	MediaURL       spanner.NullString `spanner:"media_url"`
	MediaAssetID   spanner.NullString `spanner:"media_asset_id"`
	Features       []string           `spanner:"features"`
	Specifications spanner.NullJSON   `spanner:"specifications"`
	Featured       bool               `spanner:"featured"`
	InStock        bool               `spanner:"in_stock"`
	Discount       int64              `spanner:"discount"`
	Rating         float64            `spanner:"rating"`
	Reviews        int64              `spanner:"reviews"`
	CreatedAt      time.Time          `spanner:"created_at"`
	UpdatedAt      time.Time          `spanner:"updated_at"`
}
