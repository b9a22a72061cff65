package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glowmart/storefront/internal/core/domain"
)

func TestFiltersKey(t *testing.T) {
	t.Run("EqualValuesEqualKeys", func(t *testing.T) {
		a := domain.ProductFilters{
			Category: "Hair Care",
			MinPrice: domain.Float(30),
			InStock:  domain.Bool(true),
		}
		b := domain.ProductFilters{
			Category: "Hair Care",
			MinPrice: domain.Float(30),
			InStock:  domain.Bool(true),
		}

		assert.NotSame(t, a.MinPrice, b.MinPrice)
		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("UnsetDiffersFromZero", func(t *testing.T) {
		unset := domain.ProductFilters{}
		zero := domain.ProductFilters{MinPrice: domain.Float(0)}
		assert.NotEqual(t, unset.Key(), zero.Key())

		off := domain.ProductFilters{Vegan: domain.Bool(false)}
		assert.NotEqual(t, unset.Key(), off.Key())
	})

	t.Run("EveryFieldContributes", func(t *testing.T) {
		base := domain.ProductFilters{Category: "Makeup"}
		variants := []domain.ProductFilters{
			{Category: "Makeup", Search: "lip"},
			{Category: "Makeup", Brand: "Rouge"},
			{Category: "Makeup", MaxPrice: domain.Float(40)},
			{Category: "Makeup", SkinType: "Oily"},
			{Category: "Makeup", SkinConcern: "Acne"},
			{Category: "Makeup", SkinTone: "Medium"},
			{Category: "Makeup", Page: 2},
			{Category: "Makeup", SortBy: domain.SortPrice, SortOrder: domain.SortDesc},
		}

		seen := map[string]bool{base.Key(): true}
		for _, v := range variants {
			key := v.Key()
			assert.False(t, seen[key], "key collision for %+v", v)
			seen[key] = true
		}
	})
}

func TestCustomerInfoMerge(t *testing.T) {
	entered := domain.CustomerInfo{FirstName: "Ada", Email: "ada@example.com"}
	auto := domain.CustomerInfo{
		FirstName: "Augusta", LastName: "King",
		Email: "a.king@example.com", Phone: "+15550100",
	}

	got := entered.Merge(auto)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "King", got.LastName)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, "+15550100", got.Phone)
}

func TestProduct(t *testing.T) {
	t.Run("OnSale", func(t *testing.T) {
		assert.True(t, domain.Product{Price: 20, OriginalPrice: 30}.OnSale())
		assert.False(t, domain.Product{Price: 20}.OnSale())
		assert.False(t, domain.Product{Price: 30, OriginalPrice: 20}.OnSale())
	})

	t.Run("DisplayImages", func(t *testing.T) {
		p := domain.Product{Image: "primary.jpg", Images: []string{"a.jpg", "b.jpg"}}
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.DisplayImages())

		p = domain.Product{Image: "primary.jpg"}
		assert.Equal(t, []string{"primary.jpg"}, p.DisplayImages())

		assert.Nil(t, domain.Product{}.DisplayImages())
	})
}
