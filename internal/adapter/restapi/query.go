package restapi

import (
	"net/url"
	"strconv"

	"github.com/glowmart/storefront/internal/core/domain"
)

// filterValues flattens a filter record to query parameters. Unset
// fields are omitted entirely, never serialized as empty strings.
func filterValues(f domain.ProductFilters) url.Values {
	q := url.Values{}

	setS := func(key, v string) {
		if v != "" {
			q.Set(key, v)
		}
	}
	setF := func(key string, v *float64) {
		if v != nil {
			q.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
		}
	}
	setB := func(key string, v *bool) {
		if v != nil {
			q.Set(key, strconv.FormatBool(*v))
		}
	}

	setS("search", f.Search)
	setS("category", f.Category)
	setS("brand", f.Brand)
	setF("minPrice", f.MinPrice)
	setF("maxPrice", f.MaxPrice)
	setB("inStock", f.InStock)
	setS("skinType", f.SkinType)
	setS("hairType", f.HairType)
	setS("skinConcern", f.SkinConcern)
	setS("hairConcern", f.HairConcern)
	setS("hairTexture", f.HairTexture)
	setS("skinTone", f.SkinTone)
	setB("crueltyFree", f.CrueltyFree)
	setB("vegan", f.Vegan)
	setB("luxury", f.Luxury)
	setB("cleanBeauty", f.CleanBeauty)
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	setS("sortBy", string(f.SortBy))
	setS("sortOrder", string(f.SortOrder))

	return q
}

func limitValues(limit int) url.Values {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}
