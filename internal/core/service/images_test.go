package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/service"
)

type checkerFunc func(ctx context.Context, ref string) error

func (f checkerFunc) Check(ctx context.Context, ref string) error { return f(ctx, ref) }

func TestImagePreloader(t *testing.T) {
	t.Run("NilProduct", func(t *testing.T) {
		ip := service.NewImagePreloader(checkerFunc(func(context.Context, string) error {
			t.Error("no check expected")
			return nil
		}))
		assert.Nil(t, ip.Preload(context.Background(), nil))
	})

	t.Run("OneBrokenImageDoesNotFailTheRest", func(t *testing.T) {
		broken := errors.New("image unreachable")
		ip := service.NewImagePreloader(checkerFunc(func(_ context.Context, ref string) error {
			if strings.Contains(ref, "b.jpg") {
				return broken
			}
			return nil
		}))

		p := &domain.Product{Images: []string{
			"https://cdn.example.com/a.jpg",
			"https://cdn.example.com/b.jpg",
			"https://cdn.example.com/c.jpg",
		}}

		states := ip.Preload(context.Background(), p)
		require.Len(t, states, 3)

		assert.True(t, states[0].Loaded)
		assert.False(t, states[1].Loaded)
		assert.ErrorIs(t, states[1].Err, broken)
		assert.True(t, states[2].Loaded)

		urls := service.LoadedURLs(states)
		require.Len(t, urls, 2)
		assert.NotContains(t, urls[0], "b.jpg")
		assert.NotContains(t, urls[1], "b.jpg")
	})

	t.Run("PrimaryImageFallback", func(t *testing.T) {
		ip := service.NewImagePreloader(checkerFunc(func(context.Context, string) error {
			return nil
		}))

		p := &domain.Product{Image: "https://cdn.example.com/only.jpg"}
		states := ip.Preload(context.Background(), p)

		require.Len(t, states, 1)
		assert.True(t, states[0].Loaded)
		assert.Equal(t, 0, states[0].Index)
	})

	t.Run("NoImagesNoWork", func(t *testing.T) {
		ip := service.NewImagePreloader(checkerFunc(func(context.Context, string) error {
			t.Error("no check expected")
			return nil
		}))

		assert.Empty(t, ip.Preload(context.Background(), &domain.Product{}))
	})
}
