package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/light-bringer/machinery-catalog/internal/app/product/catalog"
	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
	"github.com/light-bringer/machinery-catalog/internal/app/product/queries/list_products"
	"github.com/light-bringer/machinery-catalog/internal/app/product/usecases/save_product"
	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
)

// Multipart file fields. The first one present wins.
var mediaFileFields = []string{"imageFile", "videoFile"}

// parseListRequest reads the listing filters from the query string.
func parseListRequest(c echo.Context) (*list_products.Request, error) {
	q := c.QueryParams()

	req := &list_products.Request{
		Filter: catalog.Request{
			SearchText: strings.TrimSpace(q.Get("q")),
			Categories: splitValues(q["category"]),
			Sort:       catalog.ParseSortKey(q.Get("sort")),
		},
		Page:     atoiOr(q.Get("page"), 1),
		PageSize: atoiOr(q.Get("pageSize"), catalog.DefaultPageSize),
	}

	var err error
	if req.Filter.PriceMin, err = decimalParam(q, "minPrice"); err != nil {
		return nil, err
	}
	if req.Filter.PriceMax, err = decimalParam(q, "maxPrice"); err != nil {
		return nil, err
	}
	if req.Filter.InStockOnly, err = boolParam(q, "inStock"); err != nil {
		return nil, err
	}
	if req.Filter.OnSaleOnly, err = boolParam(q, "onSale"); err != nil {
		return nil, err
	}

	return req, nil
}

// parseSaveRequest reads a product form (multipart or urlencoded).
func parseSaveRequest(c echo.Context) (*save_product.Request, error) {
	form, err := c.FormParams()
	if err != nil {
		return nil, errx.Wrap(errx.KindValidation, "malformed form", err)
	}

	req := &save_product.Request{
		Name:          form.Get("name"),
		Description:   form.Get("description"),
		Category:      form.Get("category"),
		Price:         optional(form, "price"),
		OriginalPrice: optional(form, "originalPrice"),
		Featured:      formBool(form, "featured"),
		InStock:       formBool(form, "inStock"),
		Discount:      atoiOr(form.Get("discount"), 0),
		Rating:        floatOr(form.Get("rating"), 0),
		Reviews:       atoiOr(form.Get("reviews"), 0),
		MediaURL:      form.Get("image"),
		MediaKind:     domain.ParseMediaKind(form.Get("mediaType")),
		MediaAssetID:  firstNonEmpty(form.Get("mediaAssetId"), form.Get("cloudinaryPublicId")),
	}

	if req.Features, err = parseFeatures(form["features"]); err != nil {
		return nil, err
	}
	if req.Specifications, err = parseSpecifications(form.Get("specifications")); err != nil {
		return nil, err
	}

	file, err := readMediaFile(c)
	if err != nil {
		return nil, err
	}
	if file != nil {
		file.DurationSeconds = floatOr(form.Get("duration"), 0)
		req.File = file
	}

	return req, nil
}

func readMediaFile(c echo.Context) (*save_product.File, error) {
	for _, field := range mediaFileFields {
		fh, err := c.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			continue
		}
		if err != nil {
			return nil, errx.Wrap(errx.KindValidation, "malformed file upload", err)
		}

		src, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open upload: %w", err)
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read upload: %w", err)
		}

		return &save_product.File{Filename: fh.Filename, Data: data}, nil
	}
	return nil, nil
}

// parseFeatures accepts either a JSON array in one field or repeated fields.
func parseFeatures(values []string) ([]string, error) {
	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		var features []string
		if err := json.Unmarshal([]byte(values[0]), &features); err != nil {
			return nil, errx.Wrap(errx.KindValidation, "features must be a JSON array of strings", err)
		}
		return features, nil
	}
	return values, nil
}

func parseSpecifications(raw string) (map[string]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var specs map[string]string
	if err := json.Unmarshal([]byte(raw), &specs); err != nil {
		return nil, errx.Wrap(errx.KindValidation, "specifications must be a JSON object of strings", err)
	}
	return specs, nil
}

func splitValues(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func decimalParam(q url.Values, key string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, errx.Wrap(errx.KindValidation, "invalid "+key, err)
	}
	return &d, nil
}

func boolParam(q url.Values, key string) (bool, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errx.Wrap(errx.KindValidation, "invalid "+key, err)
	}
	return b, nil
}

// optional returns nil for an absent or blank field.
func optional(form url.Values, key string) *string {
	v := form.Get(key)
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

func formBool(form url.Values, key string) bool {
	b, _ := strconv.ParseBool(strings.TrimSpace(form.Get(key)))
	return b
}

func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func floatOr(s string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return f
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
