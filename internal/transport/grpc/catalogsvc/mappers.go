package catalogsvc

import (
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/machinery-catalog/internal/app/product/catalog"
	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
	"github.com/light-bringer/machinery-catalog/internal/app/product/queries/list_products"
)

// structToListRequest maps a validated request Struct to the listing query.
func structToListRequest(req *structpb.Struct) (*list_products.Request, error) {
	out := &list_products.Request{
		Filter: catalog.Request{
			SearchText:  stringField(req, "q"),
			InStockOnly: req.GetFields()["inStock"].GetBoolValue(),
			OnSaleOnly:  req.GetFields()["onSale"].GetBoolValue(),
			Sort:        catalog.ParseSortKey(stringField(req, "sort")),
		},
		Page:     int(req.GetFields()["page"].GetNumberValue()),
		PageSize: int(req.GetFields()["pageSize"].GetNumberValue()),
	}

	for _, v := range req.GetFields()["categories"].GetListValue().GetValues() {
		if s := v.GetStringValue(); s != "" {
			out.Filter.Categories = append(out.Filter.Categories, s)
		}
	}

	var err error
	if out.Filter.PriceMin, err = decimalField(req, "minPrice"); err != nil {
		return nil, err
	}
	if out.Filter.PriceMax, err = decimalField(req, "maxPrice"); err != nil {
		return nil, err
	}
	return out, nil
}

func decimalField(req *structpb.Struct, name string) (*decimal.Decimal, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return nil, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		d := decimal.NewFromFloat(k.NumberValue)
		return &d, nil
	case *structpb.Value_StringValue:
		d, err := decimal.NewFromString(k.StringValue)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid %s", name)
		}
		return &d, nil
	default:
		return nil, nil
	}
}

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

// productToMap converts a product to the value types structpb accepts.
func productToMap(p *domain.Product) map[string]interface{} {
	features := make([]interface{}, 0, len(p.Features))
	for _, f := range p.Features {
		features = append(features, f)
	}
	specs := make(map[string]interface{}, len(p.Specifications))
	for k, v := range p.Specifications {
		specs[k] = v
	}

	m := map[string]interface{}{
		"id":             p.ID,
		"name":           p.Name,
		"description":    p.Description,
		"category":       p.Category,
		"price":          optionalString(p.Price),
		"originalPrice":  optionalString(p.OriginalPrice),
		"image":          nil,
		"features":       features,
		"specifications": specs,
		"featured":       p.Featured,
		"inStock":        p.InStock,
		"discount":       p.Discount,
		"rating":         p.Rating,
		"reviews":        p.Reviews,
		"createdAt":      p.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updatedAt":      p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !p.Media.IsEmpty() {
		m["image"] = p.Media.URL
		m["mediaType"] = string(p.Media.Kind)
		if p.Media.HasAsset() {
			m["mediaAssetId"] = p.Media.AssetID
		}
	}
	return m
}

func productsToList(ps []*domain.Product) []interface{} {
	out := make([]interface{}, 0, len(ps))
	for _, p := range ps {
		out = append(out, productToMap(p))
	}
	return out
}

func categoriesToList(cs []domain.Category) []interface{} {
	out := make([]interface{}, 0, len(cs))
	for _, c := range cs {
		out = append(out, map[string]interface{}{"name": c.Name, "count": c.Count})
	}
	return out
}

func optionalString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// newStruct wraps structpb.NewStruct; every map built in this file holds
// supported types, so an error here is a programming mistake.
func newStruct(m map[string]interface{}) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to encode response")
	}
	return s, nil
}
