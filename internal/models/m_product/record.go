package m_product

import (
	"time"

	"gorm.io/datatypes"
)

// Record is the relational (gorm) mapping of the products table.
type Record struct {
	ProductID      string            `gorm:"column:product_id;primaryKey;size:64"`
	Name           string            `gorm:"column:name;not null"`
	Description    string            `gorm:"column:description;type:text;not null"`
	Category       string            `gorm:"column:category;not null;index"`
	Price          *string           `gorm:"column:price"`
	OriginalPrice  *string           `gorm:"column:original_price"`
	MediaKind      *string           `gorm:"column:media_kind;size:16"`
	MediaURL       *string           `gorm:"column:media_url"`
	MediaAssetID   *string           `gorm:"column:media_asset_id"`
	Features       datatypes.JSON    `gorm:"column:features;type:jsonb"`
	Specifications datatypes.JSONMap `gorm:"column:specifications;type:jsonb"`
	Featured       bool              `gorm:"column:featured;not null;default:false;index"`
	InStock        bool              `gorm:"column:in_stock;not null;default:true"`
	Discount       int               `gorm:"column:discount;not null;default:0"`
	Rating         float64           `gorm:"column:rating;not null;default:0"`
	Reviews        int               `gorm:"column:reviews;not null;default:0"`
	CreatedAt      time.Time         `gorm:"column:created_at;not null;index"`
	UpdatedAt      time.Time         `gorm:"column:updated_at;not null"`
}

// TableName implements gorm's Tabler.
func (Record) TableName() string {
	return TableName
}
