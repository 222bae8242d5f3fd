package catalogsvc

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/machinery-catalog/internal/app/product/queries/featured_products"
	"github.com/light-bringer/machinery-catalog/internal/app/product/queries/get_product"
	"github.com/light-bringer/machinery-catalog/internal/app/product/queries/list_categories"
	"github.com/light-bringer/machinery-catalog/internal/app/product/queries/list_products"
	"github.com/light-bringer/machinery-catalog/internal/app/product/queries/related_products"
)

// Handler implements CatalogServer.
// It's a thin coordinator that delegates to the catalog queries.
type Handler struct {
	getProduct     *get_product.Query
	listProducts   *list_products.Query
	listCategories *list_categories.Query
	featured       *featured_products.Query
	related        *related_products.Query
}

var _ CatalogServer = (*Handler)(nil)

// NewHandler creates a new gRPC catalog handler.
func NewHandler(
	getProduct *get_product.Query,
	listProducts *list_products.Query,
	listCategories *list_categories.Query,
	featured *featured_products.Query,
	related *related_products.Query,
) *Handler {
	return &Handler{
		getProduct:     getProduct,
		listProducts:   listProducts,
		listCategories: listCategories,
		featured:       featured,
		related:        related,
	}
}

// ListProducts filters, sorts and pages the catalog.
func (h *Handler) ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	// 1. Validate request
	if err := validateListProductsRequest(req); err != nil {
		return nil, err
	}

	// 2. Map to query request
	appReq, err := structToListRequest(req)
	if err != nil {
		return nil, err
	}

	// 3. Run query
	page, err := h.listProducts.Execute(ctx, appReq)
	if err != nil {
		return nil, mapErrorToGRPC(err)
	}

	// 4. Return response
	return newStruct(map[string]interface{}{
		"products":   productsToList(page.Items),
		"total":      page.Total,
		"page":       page.Page,
		"pageSize":   page.PageSize,
		"totalPages": page.TotalPages,
	})
}

// GetProduct returns one product by "id".
func (h *Handler) GetProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := validateGetProductRequest(req); err != nil {
		return nil, err
	}

	p, err := h.getProduct.Execute(ctx, &get_product.Request{ProductID: stringField(req, "id")})
	if err != nil {
		return nil, mapErrorToGRPC(err)
	}

	return newStruct(map[string]interface{}{"product": productToMap(p)})
}

// ListCategories returns category names with product counts.
func (h *Handler) ListCategories(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	cats, err := h.listCategories.Execute(ctx)
	if err != nil {
		return nil, mapErrorToGRPC(err)
	}

	return newStruct(map[string]interface{}{"categories": categoriesToList(cats)})
}

// FeaturedProducts returns the featured strip.
func (h *Handler) FeaturedProducts(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	ps, err := h.featured.Execute(ctx)
	if err != nil {
		return nil, mapErrorToGRPC(err)
	}

	return newStruct(map[string]interface{}{"products": productsToList(ps)})
}

// RelatedProducts returns products related to "excludeId", optionally within "category".
func (h *Handler) RelatedProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	ps, err := h.related.Execute(ctx, &related_products.Request{
		ExcludeID: stringField(req, "excludeId"),
		Category:  stringField(req, "category"),
	})
	if err != nil {
		return nil, mapErrorToGRPC(err)
	}

	return newStruct(map[string]interface{}{"products": productsToList(ps)})
}
