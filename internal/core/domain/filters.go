package domain

import (
	"fmt"
	"strings"
)

type SortField string

const (
	SortPrice       SortField = "price"
	SortRating      SortField = "rating"
	SortReviewCount SortField = "reviewCount"
	SortNewest      SortField = "isNew"
	SortTrending    SortField = "isTrending"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ProductFilters is the ephemeral filter record built from UI facet state.
// It is constructed fresh on every facet change and never persisted.
// Pointer fields distinguish "not set" from the zero value.
type ProductFilters struct {
	Search   string
	Category string
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	InStock  *bool
	SkinType    string
	HairType    string
	SkinConcern string
	HairConcern string
	HairTexture string
	SkinTone    string

	CrueltyFree *bool
	Vegan       *bool
	Luxury      *bool
	CleanBeauty *bool

	Page      int
	Limit     int
	SortBy    SortField
	SortOrder SortOrder
}

// Key renders a canonical value representation of the filter set.
// Catalog views compare keys, not pointers, to decide whether a
// dependency actually changed and a refetch is due.
func (f ProductFilters) Key() string {
	var sb strings.Builder
	writeS := func(name, v string) {
		if v != "" {
			fmt.Fprintf(&sb, "%s=%s;", name, v)
		}
	}
	writeF := func(name string, v *float64) {
		if v != nil {
			fmt.Fprintf(&sb, "%s=%g;", name, *v)
		}
	}
	writeB := func(name string, v *bool) {
		if v != nil {
			fmt.Fprintf(&sb, "%s=%t;", name, *v)
		}
	}

	writeS("search", f.Search)
	writeS("category", f.Category)
	writeS("brand", f.Brand)
	writeF("minPrice", f.MinPrice)
	writeF("maxPrice", f.MaxPrice)
	writeB("inStock", f.InStock)
	writeS("skinType", f.SkinType)
	writeS("hairType", f.HairType)
	writeS("skinConcern", f.SkinConcern)
	writeS("hairConcern", f.HairConcern)
	writeS("hairTexture", f.HairTexture)
	writeS("skinTone", f.SkinTone)
	writeB("crueltyFree", f.CrueltyFree)
	writeB("vegan", f.Vegan)
	writeB("luxury", f.Luxury)
	writeB("cleanBeauty", f.CleanBeauty)
	if f.Page != 0 {
		fmt.Fprintf(&sb, "page=%d;", f.Page)
	}
	if f.Limit != 0 {
		fmt.Fprintf(&sb, "limit=%d;", f.Limit)
	}
	writeS("sortBy", string(f.SortBy))
	writeS("sortOrder", string(f.SortOrder))
	return sb.String()
}

// Float returns a pointer to v, for filling optional filter fields.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v, for filling optional filter fields.
func Bool(v bool) *bool { return &v }
