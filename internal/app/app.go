package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/glowmart/storefront/config"
	"github.com/glowmart/storefront/internal/adapter/fallback"
	"github.com/glowmart/storefront/internal/adapter/favstore"
	"github.com/glowmart/storefront/internal/adapter/identity"
	"github.com/glowmart/storefront/internal/adapter/restapi"
	"github.com/glowmart/storefront/internal/core/service"
	"github.com/glowmart/storefront/pkg/imageurl"
	"github.com/glowmart/storefront/pkg/retry"
)

type adapters struct {
	api      *restapi.Client
	snapshot *fallback.Catalog
	store    *favstore.Store
	prefill  identity.Prefiller
}

// App wires the storefront data layer: the remote API client, the
// offline snapshot, the local cart/favorites store and the services
// the pages consume.
type App struct {
	ctx      context.Context
	cfg      config.Config
	adapters adapters

	Catalog   *service.Catalog
	Checkout  *service.Checkout
	Favorites service.Favorites
	Preloader service.ImagePreloader
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initOutboundAdapters()
	app.initServices()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"
	log := slog.With("op", op)

	api, err := restapi.New(app.cfg.BaseURL())
	if err != nil {
		app.fallDown(op, err)
	}
	app.adapters.api = api

	// a missing snapshot degrades search resilience, it is not fatal
	snapshot, err := fallback.LoadSnapshot(app.cfg.SnapshotPath)
	if err != nil {
		log.Warn("offline snapshot unavailable", "err", err)
	}
	app.adapters.snapshot = snapshot

	store, err := favstore.Open(app.cfg.StoreDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.adapters.store = store

	app.adapters.prefill = identity.NewPrefiller()
}

func (app *App) initServices() {
	// a typed nil must not leak into the interface field
	if app.adapters.snapshot != nil {
		app.Catalog = service.NewCatalog(app.adapters.api, app.adapters.snapshot)
	} else {
		app.Catalog = service.NewCatalog(app.adapters.api, nil)
	}

	app.Checkout = service.NewCheckout(
		app.adapters.api,
		app.adapters.api,
		app.adapters.api,
		app.adapters.store,
		app.adapters.prefill,
	)
	app.Favorites = service.NewFavorites(app.adapters.store)
	app.Preloader = service.NewImagePreloader(imageurl.NewValidator(nil))
}

// ProbeAPI reports whether the remote API answers, retrying with
// backoff so a cold backend gets a moment to come up. Individual calls
// still degrade to the snapshot on their own; the probe only decides
// what to log at startup.
func (app *App) ProbeAPI(ctx context.Context) bool {
	const op = "App.ProbeAPI"
	log := slog.With("op", op)

	retryCfg := retry.RetryConfig{
		MaxAttempts: 3,
		Backoff:     retry.ExponentialBackoff(200 * time.Millisecond),
	}

	err := retry.Do(ctx, retryCfg, func() error {
		_, err := app.adapters.api.Categories(ctx)
		return err
	})
	if err != nil {
		log.Warn("remote API unreachable, browsing from snapshot", "err", err)
		return false
	}

	log.Info("remote API is reachable")
	return true
}

func (app *App) Close() {
	slog.Info("application is closing...")
	app.adapters.store.Close()
	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
