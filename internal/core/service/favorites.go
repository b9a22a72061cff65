package service

import (
	"context"
	"fmt"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
)

// Favorites wraps the injected favorites store with the toggle
// semantics the product pages use.
type Favorites struct {
	store port.FavoritesStore
}

func NewFavorites(store port.FavoritesStore) Favorites {
	return Favorites{store}
}

func (s Favorites) List(ctx context.Context) ([]domain.FavoriteItem, error) {
	return s.store.Favorites(ctx)
}

func (s Favorites) IsFavorite(ctx context.Context, productID string) (bool, error) {
	return s.store.IsFavorite(ctx, productID)
}

// Toggle flips favorite membership for a product and reports the new
// state: true when the product is now a favorite.
func (s Favorites) Toggle(ctx context.Context, item domain.FavoriteItem) (bool, error) {
	const op = "Favorites.Toggle"

	fav, err := s.store.IsFavorite(ctx, item.ProductID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if fav {
		if err := s.store.RemoveFavorite(ctx, item.ProductID); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		return false, nil
	}

	if err := s.store.AddFavorite(ctx, item); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}
