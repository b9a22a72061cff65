package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
)

// ErrProductIDRequired is reported when a product view is requested
// without an id; the message is the user-facing validation string.
var ErrProductIDRequired = errors.New("Product ID is required")

// Catalog builds data views over the remote product API, degrading to
// the bundled snapshot for search and filtered browsing when the remote
// side is unreachable.
type Catalog struct {
	api      port.ProductReader
	fallback port.CatalogFallback
}

func NewCatalog(api port.ProductReader, fb port.CatalogFallback) *Catalog {
	return &Catalog{api: api, fallback: fb}
}

// Categories passes through to the remote API.
func (c *Catalog) Categories(ctx context.Context) ([]string, error) {
	return c.api.Categories(ctx)
}

// Brands passes through to the remote API.
func (c *Catalog) Brands(ctx context.Context) ([]string, error) {
	return c.api.Brands(ctx)
}

// A ListView is a fetch unit for product slices whose dependency is
// fixed at construction (featured, new arrivals, by category, related).
// Failures surface as Err with an empty result; there is no fallback.
type ListView struct {
	view[[]domain.Product]
	fetch func(context.Context) ([]domain.Product, *domain.Pagination, error)
}

func (c *Catalog) newListView(
	ctx context.Context,
	fetch func(context.Context) ([]domain.Product, *domain.Pagination, error),
) *ListView {
	lv := &ListView{view: newView[[]domain.Product](), fetch: fetch}
	lv.Refetch(ctx)
	return lv
}

// Refetch reissues the fetch; a result still in flight is superseded.
func (lv *ListView) Refetch(ctx context.Context) {
	gen := lv.begin()
	go func() {
		ps, pg, err := lv.fetch(ctx)
		if err != nil {
			lv.commit(gen, []domain.Product{}, nil, err)
			return
		}
		lv.commit(gen, ps, pg, nil)
	}()
}

func (c *Catalog) Featured(ctx context.Context, limit int) *ListView {
	return c.newListView(ctx, noPage(func(ctx context.Context) ([]domain.Product, error) {
		return c.api.Featured(ctx, limit)
	}))
}

func (c *Catalog) NewArrivals(ctx context.Context, limit int) *ListView {
	return c.newListView(ctx, noPage(func(ctx context.Context) ([]domain.Product, error) {
		return c.api.NewArrivals(ctx, limit)
	}))
}

func (c *Catalog) BestSellers(ctx context.Context, limit int) *ListView {
	return c.newListView(ctx, noPage(func(ctx context.Context) ([]domain.Product, error) {
		return c.api.BestSellers(ctx, limit)
	}))
}

func (c *Catalog) OnSale(ctx context.Context, limit int) *ListView {
	return c.newListView(ctx, noPage(func(ctx context.Context) ([]domain.Product, error) {
		return c.api.OnSale(ctx, limit)
	}))
}

func (c *Catalog) Related(ctx context.Context, id string, limit int) *ListView {
	return c.newListView(ctx, noPage(func(ctx context.Context) ([]domain.Product, error) {
		return c.api.Related(ctx, id, limit)
	}))
}

// ByCategory and ByBrand are plain listings: errors surface, no fallback.
func (c *Catalog) ByCategory(ctx context.Context, category string, limit int) *ListView {
	f := domain.ProductFilters{Category: category, Limit: limit}
	return c.newListView(ctx, func(ctx context.Context) ([]domain.Product, *domain.Pagination, error) {
		page, err := c.api.Products(ctx, f)
		return page.Products, page.Pagination, err
	})
}

func (c *Catalog) ByBrand(ctx context.Context, brand string, limit int) *ListView {
	f := domain.ProductFilters{Brand: brand, Limit: limit}
	return c.newListView(ctx, func(ctx context.Context) ([]domain.Product, *domain.Pagination, error) {
		page, err := c.api.Products(ctx, f)
		return page.Products, page.Pagination, err
	})
}

func noPage(
	fetch func(context.Context) ([]domain.Product, error),
) func(context.Context) ([]domain.Product, *domain.Pagination, error) {
	return func(ctx context.Context) ([]domain.Product, *domain.Pagination, error) {
		ps, err := fetch(ctx)
		return ps, nil, err
	}
}

// A BrowseView is the filtered product listing behind category pages.
// Its dependency is the filter record, compared by value: setting an
// equivalent filter object does not refetch. Remote failures degrade to
// the local snapshot with Err staying nil so browsing keeps working.
type BrowseView struct {
	view[[]domain.Product]
	c *Catalog

	depMu sync.Mutex
	key   string
}

func (c *Catalog) Browse(ctx context.Context, f domain.ProductFilters) *BrowseView {
	bv := &BrowseView{view: newView[[]domain.Product](), c: c, key: "\x00unset"}
	bv.SetFilters(ctx, f)
	return bv
}

// SetFilters refetches only when the filter value actually changed.
// The generation is claimed while depMu is still held: the stored key
// must always belong to the fetch that will win the commit.
func (bv *BrowseView) SetFilters(ctx context.Context, f domain.ProductFilters) {
	key := f.Key()

	bv.depMu.Lock()
	if key == bv.key {
		bv.depMu.Unlock()
		return
	}
	bv.key = key
	gen := bv.begin()
	bv.depMu.Unlock()

	go bv.load(ctx, gen, f)
}

// Refetch reruns the current filters unconditionally.
func (bv *BrowseView) Refetch(ctx context.Context, f domain.ProductFilters) {
	bv.depMu.Lock()
	bv.key = f.Key()
	gen := bv.begin()
	bv.depMu.Unlock()

	go bv.load(ctx, gen, f)
}

func (bv *BrowseView) load(ctx context.Context, gen uint64, f domain.ProductFilters) {
	const op = "BrowseView.load"

	page, err := bv.c.api.Products(ctx, f)
	if err != nil {
		if bv.c.fallback == nil {
			bv.commit(gen, []domain.Product{}, nil, err)
			return
		}
		slog.With("op", op).Warn("remote listing failed, serving snapshot", "err", err)
		local := bv.c.fallback.FilterProducts(f)
		bv.commit(gen, local.Products, local.Pagination, nil)
		return
	}
	bv.commit(gen, page.Products, page.Pagination, nil)
}

// A ProductView resolves a single product by id. Lookups must surface
// failures: there is no snapshot fallback for single entities.
type ProductView struct {
	view[*domain.Product]
	c  *Catalog
	id string
}

// Product short-circuits on a missing id without any network call.
func (c *Catalog) Product(ctx context.Context, id string) *ProductView {
	pv := &ProductView{view: newView[*domain.Product](), c: c, id: id}
	if id == "" {
		pv.set(nil, ErrProductIDRequired)
		return pv
	}
	pv.Refetch(ctx)
	return pv
}

func (pv *ProductView) Refetch(ctx context.Context) {
	if pv.id == "" {
		return
	}
	gen := pv.begin()
	go func() {
		p, err := pv.c.api.ProductByID(ctx, pv.id)
		if err != nil {
			pv.commit(gen, nil, nil, err)
			return
		}
		pv.commit(gen, &p, nil, nil)
	}()
}
