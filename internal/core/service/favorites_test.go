package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/service"
)

type mockFavoritesStore struct{ mock.Mock }

func (m *mockFavoritesStore) Favorites(ctx context.Context) ([]domain.FavoriteItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FavoriteItem), args.Error(1)
}

func (m *mockFavoritesStore) AddFavorite(ctx context.Context, item domain.FavoriteItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockFavoritesStore) RemoveFavorite(ctx context.Context, productID string) error {
	return m.Called(ctx, productID).Error(0)
}

func (m *mockFavoritesStore) IsFavorite(ctx context.Context, productID string) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}

func TestFavoritesToggle(t *testing.T) {
	item := domain.FavoriteItem{ProductID: "p1", Name: "Velvet Lipstick"}

	t.Run("AddsWhenAbsent", func(t *testing.T) {
		store := new(mockFavoritesStore)
		store.On("IsFavorite", mock.Anything, "p1").Return(false, nil)
		store.On("AddFavorite", mock.Anything, item).Return(nil)

		s := service.NewFavorites(store)
		fav, err := s.Toggle(context.Background(), item)
		require.NoError(t, err)

		assert.True(t, fav)
		store.AssertNotCalled(t, "RemoveFavorite", mock.Anything, mock.Anything)
	})

	t.Run("RemovesWhenPresent", func(t *testing.T) {
		store := new(mockFavoritesStore)
		store.On("IsFavorite", mock.Anything, "p1").Return(true, nil)
		store.On("RemoveFavorite", mock.Anything, "p1").Return(nil)

		s := service.NewFavorites(store)
		fav, err := s.Toggle(context.Background(), item)
		require.NoError(t, err)

		assert.False(t, fav)
		store.AssertNotCalled(t, "AddFavorite", mock.Anything, mock.Anything)
	})

	t.Run("LookupFailure", func(t *testing.T) {
		store := new(mockFavoritesStore)
		store.On("IsFavorite", mock.Anything, "p1").Return(false, errRemoteDown)

		s := service.NewFavorites(store)
		_, err := s.Toggle(context.Background(), item)
		assert.ErrorIs(t, err, errRemoteDown)
	})
}
