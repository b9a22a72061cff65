// Command storefront runs a scripted tour of the catalog layer against
// the configured remote API, degrading to the bundled snapshot when the
// API is down. It exists to exercise the data layer end to end.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/glowmart/storefront/config"
	"github.com/glowmart/storefront/internal/app"
	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/service"
	"github.com/glowmart/storefront/pkg/sigctx"
)

const fetchTimeout = 10 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	storefront := app.New(sigCtx, cfg)
	defer storefront.Close()

	ctx, cancel := context.WithTimeout(sigCtx, fetchTimeout)
	defer cancel()

	storefront.ProbeAPI(ctx)

	showFeatured(ctx, storefront)
	showHairCare(ctx, storefront)
	showSearch(ctx, storefront)
}

func showFeatured(ctx context.Context, a *app.App) {
	view := a.Catalog.Featured(ctx, 8)
	<-view.Updates()
	printProducts("featured", view.State())
}

func showHairCare(ctx context.Context, a *app.App) {
	facets := service.HairFacets()
	facets.SetPriceLabel("$30-$60")

	view := a.Catalog.Browse(ctx, facets.Filters())
	<-view.Updates()
	printProducts("hair care $30-$60", view.State())
}

func showSearch(ctx context.Context, a *app.App) {
	view := a.Catalog.Search(10)
	defer view.Close()

	view.SetQuery(ctx, "lipstick")

	select {
	case <-view.Updates():
		printProducts(`search "lipstick"`, view.State())
	case <-ctx.Done():
		fmt.Println("search timed out")
	}
}

func printProducts(title string, st service.ViewState[[]domain.Product]) {
	if st.Err != nil {
		fmt.Printf("%s: error: %v\n", title, st.Err)
		return
	}
	fmt.Printf("%s: %d products\n", title, len(st.Data))
	for _, p := range st.Data {
		fmt.Printf("  %-40s %-20s $%.2f\n", p.Name, p.Brand, p.Price)
	}
}
