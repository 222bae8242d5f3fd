// Package catalog filters, sorts and paginates an in-memory product collection.
// Everything here is pure: inputs are never modified and no I/O happens.
package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
)

// SortKey selects the output order.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

// ParseSortKey maps a query value to a SortKey. Unknown values fall back to featured.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortNewest:
		return SortNewest
	case SortPriceLow:
		return SortPriceLow
	case SortPriceHigh:
		return SortPriceHigh
	case SortRating:
		return SortRating
	default:
		return SortFeatured
	}
}

// Request describes a catalog view. Zero values impose no restriction.
type Request struct {
	SearchText  string
	Categories  []string
	PriceMin    *decimal.Decimal // nil = unbounded
	PriceMax    *decimal.Decimal // nil = unbounded
	InStockOnly bool
	OnSaleOnly  bool
	Sort        SortKey
}

// Apply returns the products matching every predicate of req, ordered by req.Sort.
// The result is a new slice; products without a usable price are never
// excluded by the price range.
func Apply(products []*domain.Product, req Request) []*domain.Product {
	m := newMatcher(req)

	out := make([]*domain.Product, 0, len(products))
	for _, p := range products {
		if p != nil && m.match(p) {
			out = append(out, p)
		}
	}

	sortProducts(out, req.Sort)
	return out
}

type matcher struct {
	search     string
	categories map[string]struct{}
	req        Request
}

func newMatcher(req Request) *matcher {
	m := &matcher{
		search: strings.ToLower(strings.TrimSpace(req.SearchText)),
		req:    req,
	}
	if len(req.Categories) > 0 {
		m.categories = make(map[string]struct{}, len(req.Categories))
		for _, c := range req.Categories {
			m.categories[c] = struct{}{}
		}
	}
	return m
}

func (m *matcher) match(p *domain.Product) bool {
	if m.search != "" &&
		!strings.Contains(strings.ToLower(p.Name), m.search) &&
		!strings.Contains(strings.ToLower(p.Description), m.search) {
		return false
	}

	if m.categories != nil {
		if _, ok := m.categories[p.Category]; !ok {
			return false
		}
	}

	if m.req.InStockOnly && !p.InStock {
		return false
	}

	if m.req.OnSaleOnly && p.Discount <= 0 {
		return false
	}

	return m.inPriceRange(p)
}

func (m *matcher) inPriceRange(p *domain.Product) bool {
	price, ok := domain.ParsePrice(p.Price)
	if !ok {
		return true
	}
	if m.req.PriceMin != nil && price.LessThan(*m.req.PriceMin) {
		return false
	}
	if m.req.PriceMax != nil && price.GreaterThan(*m.req.PriceMax) {
		return false
	}
	return true
}

func sortProducts(ps []*domain.Product, key SortKey) {
	var less func(a, b *domain.Product) bool

	switch ParseSortKey(string(key)) {
	case SortNewest:
		less = func(a, b *domain.Product) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortPriceLow:
		less = func(a, b *domain.Product) bool {
			return domain.PriceOrZero(a.Price).LessThan(domain.PriceOrZero(b.Price))
		}
	case SortPriceHigh:
		less = func(a, b *domain.Product) bool {
			return domain.PriceOrZero(a.Price).GreaterThan(domain.PriceOrZero(b.Price))
		}
	case SortRating:
		less = func(a, b *domain.Product) bool { return a.Rating > b.Rating }
	default:
		less = func(a, b *domain.Product) bool { return a.Featured && !b.Featured }
	}

	sort.SliceStable(ps, func(i, j int) bool { return less(ps[i], ps[j]) })
}
