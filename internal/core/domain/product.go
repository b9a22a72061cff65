package domain

type (
	// A Product is the canonical catalog entity.
	//
	// Union-shaped attributes from the remote API (scalar-or-array facets)
	// are normalized to slices at the adapter boundary, so every facet
	// field here is always a sequence, possibly empty.
	Product struct {
		ID            string
		Name          string
		Brand         string
		Description   string
		SKU           string
		Status        string
		Price         float64
		OriginalPrice float64
		Discount      int
		InStock       bool
		Stock         int
		Image         string
		Images        []string
		Rating        float64
		ReviewCount   int

		Category        string
		ProductType     string
		SkinType        []string
		HairType        []string
		HairConcern     []string
		HairTexture     []string
		SkinConcern     []string
		SkinTone        []string
		Finish          []string
		FragranceFamily string
		Concentration   string
		Season          []string
		Ingredients     []string
		Benefits        []string

		Flags ProductFlags
	}

	// ProductFlags carries the boolean marketing attributes.
	ProductFlags struct {
		New                      bool
		Sale                     bool
		Trending                 bool
		CrueltyFree              bool
		Vegan                    bool
		Luxury                   bool
		CleanBeauty              bool
		DermatologistRecommended bool
		SalonProfessional        bool
		SulfateFree              bool
		LongLasting              bool
		FragranceFree            bool
	}
)

// OnSale reports whether the product is displayed as discounted.
// An original price at or above the current price marks a sale.
func (p Product) OnSale() bool {
	return p.OriginalPrice > 0 && p.OriginalPrice >= p.Price
}

// DisplayImages returns the ordered image sequence, falling back to the
// primary image when the list is absent.
func (p Product) DisplayImages() []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if p.Image != "" {
		return []string{p.Image}
	}
	return nil
}

// Pagination mirrors the remote API paging block.
type Pagination struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
	HasNextPage  bool
	HasPrevPage  bool
}

// A ProductPage is one page of catalog results.
type ProductPage struct {
	Products   []Product
	Pagination *Pagination
}
