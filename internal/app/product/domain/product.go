package domain

import (
	"time"
)

// MediaKind tags the media attached to a product.
type MediaKind string

const (
	MediaNone  MediaKind = ""
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// ParseMediaKind maps a stored value back to a MediaKind.
// Unknown values are treated as no media.
func ParseMediaKind(s string) MediaKind {
	switch MediaKind(s) {
	case MediaImage:
		return MediaImage
	case MediaVideo:
		return MediaVideo
	default:
		return MediaNone
	}
}

// Media is the product's media reference.
// AssetID is only set when the URL was issued by the media host
// or an asset id was supplied together with the URL.
type Media struct {
	Kind    MediaKind
	URL     string
	AssetID string
}

// IsEmpty reports whether no media is attached.
func (m Media) IsEmpty() bool {
	return m.URL == ""
}

// HasAsset reports whether the media is addressable on the media host.
func (m Media) HasAsset() bool {
	return m.AssetID != ""
}

// Product is the catalog entity.
type Product struct {
	ID             string
	Name           string
	Description    string
	Category       string
	Price          *string
	OriginalPrice  *string
	Media          Media
	Features       []string
	Specifications map[string]string
	Featured       bool
	InStock        bool
	Discount       int
	Rating         float64
	Reviews        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Clone returns a deep copy so callers can reorder or edit without
// touching the original record.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Price != nil {
		v := *p.Price
		cp.Price = &v
	}
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		cp.OriginalPrice = &v
	}
	if p.Features != nil {
		cp.Features = append([]string(nil), p.Features...)
	}
	if p.Specifications != nil {
		cp.Specifications = make(map[string]string, len(p.Specifications))
		for k, v := range p.Specifications {
			cp.Specifications[k] = v
		}
	}
	return &cp
}

// SpecificationKeys is the attribute template offered for every category.
var SpecificationKeys = []string{
	"Dimensions",
	"Weight",
	"Power",
	"Capacity",
	"Material",
	"Speed",
	"Warranty",
}
