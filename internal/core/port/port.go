package port

import (
	"context"

	"github.com/glowmart/storefront/internal/core/domain"
)

// ProductReader is the remote catalog surface consumed by the views.
type ProductReader interface {
	Products(context.Context, domain.ProductFilters) (domain.ProductPage, error)
	ProductByID(ctx context.Context, id string) (domain.Product, error)
	Featured(ctx context.Context, limit int) ([]domain.Product, error)
	NewArrivals(ctx context.Context, limit int) ([]domain.Product, error)
	BestSellers(ctx context.Context, limit int) ([]domain.Product, error)
	OnSale(ctx context.Context, limit int) ([]domain.Product, error)
	Related(ctx context.Context, id string, limit int) ([]domain.Product, error)
	Categories(context.Context) ([]string, error)
	Brands(context.Context) ([]string, error)
	SearchProducts(ctx context.Context, query string, limit int) ([]domain.Product, error)
}

// OrderSubmitter posts a completed checkout to the remote API.
type OrderSubmitter interface {
	SubmitOrder(context.Context, domain.CheckoutData) (domain.OrderConfirmation, error)
}

// CustomerReader covers the account-page lookups.
type CustomerReader interface {
	Customer(ctx context.Context, id string) (domain.Customer, error)
	CustomerOrders(ctx context.Context, id string) ([]domain.Order, error)
	FindCustomer(ctx context.Context, email, phone string) (domain.Customer, error)
	FindCustomerOrders(ctx context.Context, email, phone string) ([]domain.Order, error)
}

// CustomerWriter updates the customer profile server-side.
type CustomerWriter interface {
	UpdateCustomer(ctx context.Context, id string, info domain.CustomerInfo) (domain.Customer, error)
}

// CatalogFallback re-runs the server's filter and search predicates over
// a bundled read-only snapshot when the remote API is unreachable. It
// accepts the exact same filter shape as ProductReader so callers cannot
// tell which path produced a result.
type CatalogFallback interface {
	FilterProducts(domain.ProductFilters) domain.ProductPage
	SearchSnapshot(query string, limit int) []domain.Product
}

// CartStore is the injected cart persistence handle.
type CartStore interface {
	CartItems(context.Context) ([]domain.CartItem, error)
	AddCartItem(context.Context, domain.CartItem) (domain.CartItem, error)
	SetCartQuantity(ctx context.Context, itemID string, quantity int) error
	RemoveCartItem(ctx context.Context, itemID string) error
	ClearCart(context.Context) error
}

// FavoritesStore is the injected favorites persistence handle.
type FavoritesStore interface {
	Favorites(context.Context) ([]domain.FavoriteItem, error)
	AddFavorite(context.Context, domain.FavoriteItem) error
	RemoveFavorite(ctx context.Context, productID string) error
	IsFavorite(ctx context.Context, productID string) (bool, error)
}

// CustomerPrefill extracts customer identity from a provider session token.
type CustomerPrefill interface {
	Prefill(token string) (domain.CustomerInfo, error)
}

// ImageChecker reports whether an image reference is actually loadable.
type ImageChecker interface {
	Check(ctx context.Context, ref string) error
}
