package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/light-bringer/machinery-catalog/internal/app/product/queries/featured_products"
	"github.com/light-bringer/machinery-catalog/internal/app/product/queries/get_product"
	"github.com/light-bringer/machinery-catalog/internal/app/product/queries/list_categories"
	"github.com/light-bringer/machinery-catalog/internal/app/product/queries/list_products"
	"github.com/light-bringer/machinery-catalog/internal/app/product/queries/related_products"
	"github.com/light-bringer/machinery-catalog/internal/app/product/usecases/delete_product"
	"github.com/light-bringer/machinery-catalog/internal/app/product/usecases/save_product"
)

// ProductHandler serves the storefront catalog and the admin product API.
// It only translates HTTP to use case calls.
type ProductHandler struct {
	// Commands
	saveProduct   *save_product.Interactor
	deleteProduct *delete_product.Interactor

	// Queries
	getProduct     *get_product.Query
	listProducts   *list_products.Query
	listCategories *list_categories.Query
	featured       *featured_products.Query
	related        *related_products.Query

	logger *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(
	saveProduct *save_product.Interactor,
	deleteProduct *delete_product.Interactor,
	getProduct *get_product.Query,
	listProducts *list_products.Query,
	listCategories *list_categories.Query,
	featured *featured_products.Query,
	related *related_products.Query,
	logger *zap.Logger,
) *ProductHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductHandler{
		saveProduct:    saveProduct,
		deleteProduct:  deleteProduct,
		getProduct:     getProduct,
		listProducts:   listProducts,
		listCategories: listCategories,
		featured:       featured,
		related:        related,
		logger:         logger,
	}
}

// List handles GET /api/products and GET /api/admin/products.
func (h *ProductHandler) List(c echo.Context) error {
	req, err := parseListRequest(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	page, err := h.listProducts.Execute(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return paged(c, toProductDTOs(page.Items), page.Total, page.Page, page.PageSize, page.TotalPages)
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.getProduct.Execute(c.Request().Context(), &get_product.Request{ProductID: c.Param("id")})
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return ok(c, toProductDTO(p))
}

// Featured handles GET /api/products/featured.
func (h *ProductHandler) Featured(c echo.Context) error {
	ps, err := h.featured.Execute(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return ok(c, toProductDTOs(ps))
}

// Related handles GET /api/products/related?excludeId=&category=.
func (h *ProductHandler) Related(c echo.Context) error {
	ps, err := h.related.Execute(c.Request().Context(), &related_products.Request{
		ExcludeID: c.QueryParam("excludeId"),
		Category:  c.QueryParam("category"),
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return ok(c, toProductDTOs(ps))
}

// Categories handles GET /api/categories.
func (h *ProductHandler) Categories(c echo.Context) error {
	cats, err := h.listCategories.Execute(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return ok(c, toCategoryDTOs(cats))
}

// Create handles POST /api/admin/products.
func (h *ProductHandler) Create(c echo.Context) error {
	req, err := parseSaveRequest(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	p, err := h.saveProduct.Execute(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return created(c, toProductDTO(p))
}

// Update handles PUT /api/admin/products/:id.
func (h *ProductHandler) Update(c echo.Context) error {
	req, err := parseSaveRequest(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	req.ProductID = c.Param("id")

	p, err := h.saveProduct.Execute(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return ok(c, toProductDTO(p))
}

// Delete handles DELETE /api/admin/products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	err := h.deleteProduct.Execute(c.Request().Context(), &delete_product.Request{ProductID: c.Param("id")})
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}
