package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidCheckout = errors.New("invalid checkout data")
)

// Checkout drives order submission and account lookups: it assembles
// checkout data from the cart store, validates it locally and posts it
// to the remote API. Validation failures short-circuit before any
// network attempt.
type Checkout struct {
	orders    port.OrderSubmitter
	customers port.CustomerReader
	profile   port.CustomerWriter
	cart      port.CartStore
	prefill   port.CustomerPrefill
	validate  *validator.Validate
}

func NewCheckout(
	orders port.OrderSubmitter,
	customers port.CustomerReader,
	profile port.CustomerWriter,
	cart port.CartStore,
	prefill port.CustomerPrefill,
) *Checkout {
	return &Checkout{
		orders:    orders,
		customers: customers,
		profile:   profile,
		cart:      cart,
		prefill:   prefill,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// BuildOrder assembles checkout data from the current cart contents.
// The reference is a client-generated handle the backend can use to
// deduplicate resubmissions.
func (s *Checkout) BuildOrder(
	ctx context.Context,
	info domain.CustomerInfo,
	shipping domain.ShippingAddress,
	shippingCost float64,
	paymentMethod string,
	customerID string,
) (domain.CheckoutData, error) {
	const op = "Checkout.BuildOrder"

	items, err := s.cart.CartItems(ctx)
	if err != nil {
		return domain.CheckoutData{}, fmt.Errorf("%s: %w", op, err)
	}
	if len(items) == 0 {
		return domain.CheckoutData{}, fmt.Errorf("%s: %w", op, ErrEmptyCart)
	}

	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, it := range items {
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Brand:     it.Brand,
			Price:     it.Price,
			Image:     it.Image,
			Quantity:  it.Quantity,
		})
	}

	return domain.CheckoutData{
		Reference:     uuid.NewString(),
		Customer:      info,
		Items:         orderItems,
		Shipping:      shipping,
		ShippingCost:  shippingCost,
		PaymentMethod: paymentMethod,
		CustomerID:    customerID,
	}, nil
}

// Submit validates and posts the order, clearing the cart on success.
func (s *Checkout) Submit(
	ctx context.Context, data domain.CheckoutData,
) (domain.OrderConfirmation, error) {
	const op = "Checkout.Submit"
	log := slog.With("op", op)

	if err := s.validate.Struct(data); err != nil {
		return domain.OrderConfirmation{},
			fmt.Errorf("%s: %w: %w", op, ErrInvalidCheckout, err)
	}

	conf, err := s.orders.SubmitOrder(ctx, data)
	if err != nil {
		return domain.OrderConfirmation{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cart.ClearCart(ctx); err != nil {
		log.Error("failed to clear cart after checkout", "err", err)
	}

	log.Info("order placed", "orderNumber", conf.OrderNumber)
	return conf, nil
}

// PrefillCustomer overlays identity-provider claims onto entered data.
// A bad token is not fatal: checkout proceeds with what the user typed.
func (s *Checkout) PrefillCustomer(
	entered domain.CustomerInfo, token string,
) domain.CustomerInfo {
	const op = "Checkout.PrefillCustomer"

	if s.prefill == nil || token == "" {
		return entered
	}

	auto, err := s.prefill.Prefill(token)
	if err != nil {
		slog.With("op", op).Debug("prefill unavailable", "err", err)
		return entered
	}
	return entered.Merge(auto)
}

func (s *Checkout) Customer(ctx context.Context, id string) (domain.Customer, error) {
	return s.customers.Customer(ctx, id)
}

func (s *Checkout) UpdateCustomer(
	ctx context.Context, id string, info domain.CustomerInfo,
) (domain.Customer, error) {
	const op = "Checkout.UpdateCustomer"

	if err := s.validate.Struct(info); err != nil {
		return domain.Customer{}, fmt.Errorf("%s: %w: %w", op, ErrInvalidCheckout, err)
	}
	return s.profile.UpdateCustomer(ctx, id, info)
}

func (s *Checkout) CustomerOrders(ctx context.Context, id string) ([]domain.Order, error) {
	return s.customers.CustomerOrders(ctx, id)
}

func (s *Checkout) FindCustomer(
	ctx context.Context, email, phone string,
) (domain.Customer, error) {
	return s.customers.FindCustomer(ctx, email, phone)
}

func (s *Checkout) FindCustomerOrders(
	ctx context.Context, email, phone string,
) ([]domain.Order, error) {
	return s.customers.FindCustomerOrders(ctx, email, phone)
}
