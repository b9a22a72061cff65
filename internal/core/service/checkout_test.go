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

type mockOrderSubmitter struct{ mock.Mock }

func (m *mockOrderSubmitter) SubmitOrder(
	ctx context.Context, data domain.CheckoutData,
) (domain.OrderConfirmation, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(domain.OrderConfirmation), args.Error(1)
}

type mockCartStore struct{ mock.Mock }

func (m *mockCartStore) CartItems(ctx context.Context) ([]domain.CartItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CartItem), args.Error(1)
}

func (m *mockCartStore) AddCartItem(
	ctx context.Context, item domain.CartItem,
) (domain.CartItem, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(domain.CartItem), args.Error(1)
}

func (m *mockCartStore) SetCartQuantity(ctx context.Context, itemID string, quantity int) error {
	return m.Called(ctx, itemID, quantity).Error(0)
}

func (m *mockCartStore) RemoveCartItem(ctx context.Context, itemID string) error {
	return m.Called(ctx, itemID).Error(0)
}

func (m *mockCartStore) ClearCart(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockPrefiller struct{ mock.Mock }

func (m *mockPrefiller) Prefill(token string) (domain.CustomerInfo, error) {
	args := m.Called(token)
	return args.Get(0).(domain.CustomerInfo), args.Error(1)
}

func validCheckoutData() domain.CheckoutData {
	return domain.CheckoutData{
		Reference: "ref-1",
		Customer: domain.CustomerInfo{
			FirstName: "Ada", LastName: "Lovelace",
			Email: "ada@example.com", Phone: "+15550100",
		},
		Items: []domain.OrderItem{
			{ProductID: "p1", Name: "Lipstick", Brand: "Rouge", Price: 24, Quantity: 2},
		},
		Shipping: domain.ShippingAddress{
			Line1: "1 Analytical Way", City: "London",
			PostalCode: "SW1A", Country: "GB",
		},
		ShippingCost:  5,
		PaymentMethod: "card",
	}
}

func TestBuildOrder(t *testing.T) {
	info := validCheckoutData().Customer
	shipping := validCheckoutData().Shipping

	t.Run("AssemblesFromCart", func(t *testing.T) {
		cart := new(mockCartStore)
		cart.On("CartItems", mock.Anything).Return([]domain.CartItem{
			{ID: "c1", ProductID: "p1", Name: "Lipstick", Brand: "Rouge", Price: 24, Quantity: 2},
			{ID: "c2", ProductID: "p2", Name: "Serum", Brand: "Lumen", Price: 89, Quantity: 1},
		}, nil)

		s := service.NewCheckout(nil, nil, nil, cart, nil)
		data, err := s.BuildOrder(context.Background(), info, shipping, 5, "card", "")
		require.NoError(t, err)

		assert.NotEmpty(t, data.Reference)
		require.Len(t, data.Items, 2)
		assert.Equal(t, "p1", data.Items[0].ProductID)
		assert.Equal(t, 2, data.Items[0].Quantity)
		assert.Equal(t, float64(137), data.Subtotal())
	})

	t.Run("EmptyCart", func(t *testing.T) {
		cart := new(mockCartStore)
		cart.On("CartItems", mock.Anything).Return([]domain.CartItem{}, nil)

		s := service.NewCheckout(nil, nil, nil, cart, nil)
		_, err := s.BuildOrder(context.Background(), info, shipping, 0, "card", "")
		assert.ErrorIs(t, err, service.ErrEmptyCart)
	})

	t.Run("CartFailure", func(t *testing.T) {
		cart := new(mockCartStore)
		cart.On("CartItems", mock.Anything).Return([]domain.CartItem(nil), errRemoteDown)

		s := service.NewCheckout(nil, nil, nil, cart, nil)
		_, err := s.BuildOrder(context.Background(), info, shipping, 0, "card", "")
		assert.ErrorIs(t, err, errRemoteDown)
	})
}

func TestSubmit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		data := validCheckoutData()

		orders := new(mockOrderSubmitter)
		orders.On("SubmitOrder", mock.Anything, data).
			Return(domain.OrderConfirmation{OrderNumber: "ORD-1001", TotalAmount: 53}, nil)

		cart := new(mockCartStore)
		cart.On("ClearCart", mock.Anything).Return(nil)

		s := service.NewCheckout(orders, nil, nil, cart, nil)
		conf, err := s.Submit(context.Background(), data)
		require.NoError(t, err)

		assert.Equal(t, "ORD-1001", conf.OrderNumber)
		cart.AssertCalled(t, "ClearCart", mock.Anything)
	})

	t.Run("InvalidDataShortCircuits", func(t *testing.T) {
		data := validCheckoutData()
		data.Customer.Email = "not-an-email"

		orders := new(mockOrderSubmitter)
		cart := new(mockCartStore)

		s := service.NewCheckout(orders, nil, nil, cart, nil)
		_, err := s.Submit(context.Background(), data)

		assert.ErrorIs(t, err, service.ErrInvalidCheckout)
		orders.AssertNotCalled(t, "SubmitOrder", mock.Anything, mock.Anything)
	})

	t.Run("NoItemsIsInvalid", func(t *testing.T) {
		data := validCheckoutData()
		data.Items = nil

		s := service.NewCheckout(new(mockOrderSubmitter), nil, nil, new(mockCartStore), nil)
		_, err := s.Submit(context.Background(), data)
		assert.ErrorIs(t, err, service.ErrInvalidCheckout)
	})

	t.Run("SubmitFailureKeepsCart", func(t *testing.T) {
		data := validCheckoutData()

		orders := new(mockOrderSubmitter)
		orders.On("SubmitOrder", mock.Anything, data).
			Return(domain.OrderConfirmation{}, errRemoteDown)

		cart := new(mockCartStore)

		s := service.NewCheckout(orders, nil, nil, cart, nil)
		_, err := s.Submit(context.Background(), data)

		assert.ErrorIs(t, err, errRemoteDown)
		cart.AssertNotCalled(t, "ClearCart", mock.Anything)
	})

	t.Run("ClearCartFailureIsNotFatal", func(t *testing.T) {
		data := validCheckoutData()

		orders := new(mockOrderSubmitter)
		orders.On("SubmitOrder", mock.Anything, data).
			Return(domain.OrderConfirmation{OrderNumber: "ORD-1002"}, nil)

		cart := new(mockCartStore)
		cart.On("ClearCart", mock.Anything).Return(errRemoteDown)

		s := service.NewCheckout(orders, nil, nil, cart, nil)
		conf, err := s.Submit(context.Background(), data)

		require.NoError(t, err)
		assert.Equal(t, "ORD-1002", conf.OrderNumber)
	})
}

func TestPrefillCustomer(t *testing.T) {
	entered := domain.CustomerInfo{FirstName: "Ada", Email: ""}

	t.Run("MergePrefersEnteredValues", func(t *testing.T) {
		pf := new(mockPrefiller)
		pf.On("Prefill", "token-1").Return(domain.CustomerInfo{
			FirstName: "Augusta", LastName: "King", Email: "ada@example.com",
		}, nil)

		s := service.NewCheckout(nil, nil, nil, nil, pf)
		got := s.PrefillCustomer(entered, "token-1")

		assert.Equal(t, "Ada", got.FirstName, "typed value wins")
		assert.Equal(t, "King", got.LastName)
		assert.Equal(t, "ada@example.com", got.Email)
	})

	t.Run("BadTokenIsNotFatal", func(t *testing.T) {
		pf := new(mockPrefiller)
		pf.On("Prefill", "garbage").Return(domain.CustomerInfo{}, errRemoteDown)

		s := service.NewCheckout(nil, nil, nil, nil, pf)
		assert.Equal(t, entered, s.PrefillCustomer(entered, "garbage"))
	})

	t.Run("NoToken", func(t *testing.T) {
		pf := new(mockPrefiller)

		s := service.NewCheckout(nil, nil, nil, nil, pf)
		assert.Equal(t, entered, s.PrefillCustomer(entered, ""))
		pf.AssertNotCalled(t, "Prefill", mock.Anything)
	})

	t.Run("NoPrefiller", func(t *testing.T) {
		s := service.NewCheckout(nil, nil, nil, nil, nil)
		assert.Equal(t, entered, s.PrefillCustomer(entered, "token-1"))
	})
}
