package service

import (
	"sync"

	"github.com/glowmart/storefront/internal/core/domain"
)

// A PriceBracket maps a human-readable price label to numeric bounds.
type PriceBracket struct {
	Label string
	Min   *float64
	Max   *float64
}

type typeFacet int

const (
	skinTypeFacet typeFacet = iota
	hairTypeFacet
)

type concernFacet int

const (
	noConcernFacet concernFacet = iota
	skinConcernFacet
	hairConcernFacet
)

type textureFacet int

const (
	noTextureFacet textureFacet = iota
	skinToneFacet
	hairTextureFacet
)

// PageFacets is the per-page facet state machine: each category page
// owns independent facet selections, and every change recomputes the
// filter record handed to the catalog views.
type PageFacets struct {
	mu sync.Mutex

	brackets     []PriceBracket
	typeField    typeFacet
	concernField concernFacet
	textureField textureFacet

	category     string
	typeValue    string
	concernValue string
	textureValue string
	priceLabel   string
	sortBy       domain.SortField
	sortOrder    domain.SortOrder

	onChange func(domain.ProductFilters)
}

// SkincareFacets builds facet state for the skin care page.
func SkincareFacets() *PageFacets {
	return &PageFacets{
		typeField:    skinTypeFacet,
		concernField: skinConcernFacet,
		textureField: skinToneFacet,
		brackets: []PriceBracket{
			{Label: "Under $25", Max: domain.Float(25)},
			{Label: "$25-$50", Min: domain.Float(25), Max: domain.Float(50)},
			{Label: "$50-$100", Min: domain.Float(50), Max: domain.Float(100)},
			{Label: "Over $100", Min: domain.Float(100)},
		},
	}
}

// MakeupFacets builds facet state for the makeup page.
func MakeupFacets() *PageFacets {
	return &PageFacets{
		typeField:    skinTypeFacet,
		concernField: skinConcernFacet,
		textureField: skinToneFacet,
		brackets: []PriceBracket{
			{Label: "Under $20", Max: domain.Float(20)},
			{Label: "$20-$40", Min: domain.Float(20), Max: domain.Float(40)},
			{Label: "$40-$80", Min: domain.Float(40), Max: domain.Float(80)},
			{Label: "Over $80", Min: domain.Float(80)},
		},
	}
}

// HairFacets builds facet state for the hair care page.
func HairFacets() *PageFacets {
	return &PageFacets{
		typeField:    hairTypeFacet,
		concernField: hairConcernFacet,
		textureField: hairTextureFacet,
		brackets: []PriceBracket{
			{Label: "Under $30", Max: domain.Float(30)},
			{Label: "$30-$60", Min: domain.Float(30), Max: domain.Float(60)},
			{Label: "$60-$100", Min: domain.Float(60), Max: domain.Float(100)},
			{Label: "Over $100", Min: domain.Float(100)},
		},
	}
}

// PerfumeFacets builds facet state for the perfume page.
func PerfumeFacets() *PageFacets {
	return &PageFacets{
		typeField: skinTypeFacet,
		brackets: []PriceBracket{
			{Label: "Under $50", Max: domain.Float(50)},
			{Label: "$50-$100", Min: domain.Float(50), Max: domain.Float(100)},
			{Label: "$100-$200", Min: domain.Float(100), Max: domain.Float(200)},
			{Label: "Over $200", Min: domain.Float(200)},
		},
	}
}

// OnChange registers the derived-effect callback invoked with the
// recomputed filters after every facet change.
func (pf *PageFacets) OnChange(fn func(domain.ProductFilters)) {
	pf.mu.Lock()
	pf.onChange = fn
	pf.mu.Unlock()
}

func (pf *PageFacets) SetCategory(v string) {
	pf.mu.Lock()
	pf.category = v
	pf.emitLocked()
	pf.mu.Unlock()
}

// SetType sets the skin-type or hair-type facet, whichever the page binds.
func (pf *PageFacets) SetType(v string) {
	pf.mu.Lock()
	pf.typeValue = v
	pf.emitLocked()
	pf.mu.Unlock()
}

// SetConcern sets the skin-concern or hair-concern facet. Pages without
// a concern facet still emit, with the value ignored.
func (pf *PageFacets) SetConcern(v string) {
	pf.mu.Lock()
	pf.concernValue = v
	pf.emitLocked()
	pf.mu.Unlock()
}

// SetTexture sets the texture or tone facet, whichever the page binds.
func (pf *PageFacets) SetTexture(v string) {
	pf.mu.Lock()
	pf.textureValue = v
	pf.emitLocked()
	pf.mu.Unlock()
}

// SetPriceLabel selects a price bracket by its display label. Unknown
// labels clear the price bounds.
func (pf *PageFacets) SetPriceLabel(label string) {
	pf.mu.Lock()
	pf.priceLabel = label
	pf.emitLocked()
	pf.mu.Unlock()
}

func (pf *PageFacets) SetSort(by domain.SortField, order domain.SortOrder) {
	pf.mu.Lock()
	pf.sortBy = by
	pf.sortOrder = order
	pf.emitLocked()
	pf.mu.Unlock()
}

// Filters recomputes the filter record from current facet state.
func (pf *PageFacets) Filters() domain.ProductFilters {
	pf.mu.Lock()
	defer pf.mu.Unlock()
	return pf.filtersLocked()
}

func (pf *PageFacets) filtersLocked() domain.ProductFilters {
	f := domain.ProductFilters{
		Category:  pf.category,
		SortBy:    pf.sortBy,
		SortOrder: pf.sortOrder,
	}

	switch pf.typeField {
	case skinTypeFacet:
		f.SkinType = pf.typeValue
	case hairTypeFacet:
		f.HairType = pf.typeValue
	}

	switch pf.concernField {
	case skinConcernFacet:
		f.SkinConcern = pf.concernValue
	case hairConcernFacet:
		f.HairConcern = pf.concernValue
	}

	switch pf.textureField {
	case skinToneFacet:
		f.SkinTone = pf.textureValue
	case hairTextureFacet:
		f.HairTexture = pf.textureValue
	}

	for _, b := range pf.brackets {
		if b.Label == pf.priceLabel {
			f.MinPrice = b.Min
			f.MaxPrice = b.Max
			break
		}
	}
	return f
}

func (pf *PageFacets) emitLocked() {
	if pf.onChange != nil {
		pf.onChange(pf.filtersLocked())
	}
}
