// Package fallback keeps category and search pages partially functional
// when the remote API is unreachable, by re-running an equivalent filter
// and search predicate over a read-only bundled product snapshot.
package fallback

import (
	"strings"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
)

var _ port.CatalogFallback = (*Catalog)(nil)

const defaultPageSize = 20

// A Catalog serves filter and search queries from an in-memory snapshot.
// The snapshot is never mutated after construction.
type Catalog struct {
	products []domain.Product
}

func NewCatalog(products []domain.Product) *Catalog {
	return &Catalog{products}
}

func (c *Catalog) Len() int { return len(c.products) }

// FilterProducts applies the same filter shape as the remote API and
// returns a sorted, paginated page, so callers are unaware which path
// executed.
func (c *Catalog) FilterProducts(f domain.ProductFilters) domain.ProductPage {
	var matched []domain.Product
	for _, p := range c.products {
		if MatchesFilters(p, f) {
			matched = append(matched, p)
		}
	}
	domain.SortProducts(matched, f.SortBy, f.SortOrder)
	return paginate(matched, f.Page, f.Limit)
}

// SearchSnapshot runs the search predicate alone, capped at limit.
func (c *Catalog) SearchSnapshot(query string, limit int) []domain.Product {
	var out []domain.Product
	for _, p := range c.products {
		if MatchesQuery(p, query) {
			out = append(out, p)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}

// MatchesFilters is the intersection predicate over all provided facets.
// Exported as a pure function so conformance tests can hold the local
// predicate against a reference server implementation.
func MatchesFilters(p domain.Product, f domain.ProductFilters) bool {
	if f.Search != "" && !MatchesQuery(p, f.Search) {
		return false
	}
	if f.Category != "" &&
		!strings.EqualFold(p.Category, f.Category) &&
		!strings.EqualFold(p.ProductType, f.Category) {
		return false
	}
	if f.Brand != "" && !strings.EqualFold(p.Brand, f.Brand) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	if f.SkinType != "" && !containsFold(p.SkinType, f.SkinType) {
		return false
	}
	if f.HairType != "" && !containsFold(p.HairType, f.HairType) {
		return false
	}
	if f.SkinConcern != "" && !containsFold(p.SkinConcern, f.SkinConcern) {
		return false
	}
	if f.HairConcern != "" && !containsFold(p.HairConcern, f.HairConcern) {
		return false
	}
	if f.HairTexture != "" && !containsFold(p.HairTexture, f.HairTexture) {
		return false
	}
	if f.SkinTone != "" && !containsFold(p.SkinTone, f.SkinTone) {
		return false
	}
	if f.CrueltyFree != nil && p.Flags.CrueltyFree != *f.CrueltyFree {
		return false
	}
	if f.Vegan != nil && p.Flags.Vegan != *f.Vegan {
		return false
	}
	if f.Luxury != nil && p.Flags.Luxury != *f.Luxury {
		return false
	}
	if f.CleanBeauty != nil && p.Flags.CleanBeauty != *f.CleanBeauty {
		return false
	}
	return true
}

// MatchesQuery is the case-insensitive substring search over all
// searchable fields; any single field matching qualifies the product.
func MatchesQuery(p domain.Product, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	fields := []string{
		p.Name, p.Brand, p.Category, p.Description,
		p.FragranceFamily, p.Concentration,
	}
	fields = append(fields, p.Benefits...)
	fields = append(fields, p.Ingredients...)
	fields = append(fields, p.SkinConcern...)
	fields = append(fields, p.HairConcern...)
	fields = append(fields, p.Season...)

	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func containsFold(vs []string, want string) bool {
	for _, v := range vs {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

func paginate(ps []domain.Product, page, limit int) domain.ProductPage {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}

	total := len(ps)
	totalPages := (total + limit - 1) / limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return domain.ProductPage{
		Products: ps[start:end],
		Pagination: &domain.Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: limit,
			HasNextPage:  page < totalPages,
			HasPrevPage:  page > 1,
		},
	}
}
