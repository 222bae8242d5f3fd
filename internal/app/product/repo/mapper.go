package repo

import (
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"gorm.io/datatypes"

	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
	"github.com/light-bringer/machinery-catalog/internal/models/m_product"
)

// domainToData converts a domain Product to a Spanner row.
func domainToData(p *domain.Product) *m_product.Data {
	data := &m_product.Data{
		ProductID:     p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Price:         nullString(p.Price),
		OriginalPrice: nullString(p.OriginalPrice),
		Features:      p.Features,
		Featured:      p.Featured,
		InStock:       p.InStock,
		Discount:      int64(p.Discount),
		Rating:        p.Rating,
		Reviews:       int64(p.Reviews),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}

	if !p.Media.IsEmpty() {
		data.MediaKind = spanner.NullString{StringVal: string(p.Media.Kind), Valid: true}
		data.MediaURL = spanner.NullString{StringVal: p.Media.URL, Valid: true}
		if p.Media.HasAsset() {
			data.MediaAssetID = spanner.NullString{StringVal: p.Media.AssetID, Valid: true}
		}
	}

	if len(p.Specifications) > 0 {
		data.Specifications = spanner.NullJSON{Value: p.Specifications, Valid: true}
	}

	return data
}

// dataToDomain converts a Spanner row to a domain Product.
func dataToDomain(data *m_product.Data) (*domain.Product, error) {
	specs, err := specificationsFromJSON(data.Specifications)
	if err != nil {
		return nil, fmt.Errorf("invalid specifications for product %s: %w", data.ProductID, err)
	}

	p := &domain.Product{
		ID:             data.ProductID,
		Name:           data.Name,
		Description:    data.Description,
		Category:       data.Category,
		Price:          stringPtr(data.Price),
		OriginalPrice:  stringPtr(data.OriginalPrice),
		Features:       data.Features,
		Specifications: specs,
		Featured:       data.Featured,
		InStock:        data.InStock,
		Discount:       int(data.Discount),
		Rating:         data.Rating,
		Reviews:        int(data.Reviews),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}

	if data.MediaURL.Valid && data.MediaURL.StringVal != "" {
		p.Media = domain.Media{
			Kind:    domain.ParseMediaKind(data.MediaKind.StringVal),
			URL:     data.MediaURL.StringVal,
			AssetID: data.MediaAssetID.StringVal,
		}
	}

	return p, nil
}

// specificationsFromJSON accepts both the decoded form Spanner returns
// (map[string]interface{}) and a map written by this package.
func specificationsFromJSON(v spanner.NullJSON) (map[string]string, error) {
	if !v.Valid || v.Value == nil {
		return nil, nil
	}
	switch m := v.Value.(type) {
	case map[string]string:
		return m, nil
	case map[string]interface{}:
		return stringMap(m), nil
	default:
		return nil, fmt.Errorf("unexpected JSON value %T", v.Value)
	}
}

// domainToRecord converts a domain Product to a gorm record.
func domainToRecord(p *domain.Product) (*m_product.Record, error) {
	features, err := json.Marshal(nonNilFeatures(p.Features))
	if err != nil {
		return nil, fmt.Errorf("failed to encode features: %w", err)
	}

	rec := &m_product.Record{
		ProductID:     p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Features:      datatypes.JSON(features),
		Featured:      p.Featured,
		InStock:       p.InStock,
		Discount:      p.Discount,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}

	if !p.Media.IsEmpty() {
		kind := string(p.Media.Kind)
		url := p.Media.URL
		rec.MediaKind = &kind
		rec.MediaURL = &url
		if p.Media.HasAsset() {
			assetID := p.Media.AssetID
			rec.MediaAssetID = &assetID
		}
	}

	if len(p.Specifications) > 0 {
		rec.Specifications = make(datatypes.JSONMap, len(p.Specifications))
		for k, v := range p.Specifications {
			rec.Specifications[k] = v
		}
	}

	return rec, nil
}

// recordToDomain converts a gorm record to a domain Product.
func recordToDomain(rec *m_product.Record) (*domain.Product, error) {
	var features []string
	if len(rec.Features) > 0 {
		if err := json.Unmarshal(rec.Features, &features); err != nil {
			return nil, fmt.Errorf("invalid features for product %s: %w", rec.ProductID, err)
		}
	}

	p := &domain.Product{
		ID:            rec.ProductID,
		Name:          rec.Name,
		Description:   rec.Description,
		Category:      rec.Category,
		Price:         rec.Price,
		OriginalPrice: rec.OriginalPrice,
		Features:      features,
		Featured:      rec.Featured,
		InStock:       rec.InStock,
		Discount:      rec.Discount,
		Rating:        rec.Rating,
		Reviews:       rec.Reviews,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}

	if len(rec.Specifications) > 0 {
		p.Specifications = stringMap(rec.Specifications)
	}

	if rec.MediaURL != nil && *rec.MediaURL != "" {
		p.Media = domain.Media{URL: *rec.MediaURL}
		if rec.MediaKind != nil {
			p.Media.Kind = domain.ParseMediaKind(*rec.MediaKind)
		}
		if rec.MediaAssetID != nil {
			p.Media.AssetID = *rec.MediaAssetID
		}
	}

	return p, nil
}

func stringMap(m map[string]interface{}) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
			continue
		}
		out[k] = fmt.Sprint(v)
	}
	return out
}

func nonNilFeatures(f []string) []string {
	if f == nil {
		return []string{}
	}
	return f
}

func nullString(s *string) spanner.NullString {
	if s == nil {
		return spanner.NullString{}
	}
	return spanner.NullString{StringVal: *s, Valid: true}
}

func stringPtr(s spanner.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.StringVal
	return &v
}
