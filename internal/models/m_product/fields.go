package m_product

// Column names for the products table.
const (
	TableName = "products"

	ProductID      = "product_id"
	Name           = "name"
	Description    = "description"
	Category       = "category"
	Price          = "price"
	OriginalPrice  = "original_price"
	MediaKind      = "media_kind"
	MediaURL       = "media_url"
	MediaAssetID   = "media_asset_id"
	Features       = "features"
	Specifications = "specifications"
	Featured       = "featured"
	InStock        = "in_stock"
	Discount       = "discount"
	Rating         = "rating"
	Reviews        = "reviews"
	CreatedAt      = "created_at"
	UpdatedAt      = "updated_at"
)

// Columns lists every column in storage order.
var Columns = []string{
	ProductID,
	Name,
	Description,
	Category,
	Price,
	OriginalPrice,
	MediaKind,
	MediaURL,
	MediaAssetID,
	Features,
	Specifications,
	Featured,
	InStock,
	Discount,
	Rating,
	Reviews,
	CreatedAt,
	UpdatedAt,
}
