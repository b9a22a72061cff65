package domain

import "time"

// An OrderItem is one purchased line inside a checkout submission.
type OrderItem struct {
	ProductID string  `validate:"required"`
	Name      string  `validate:"required"`
	Brand     string
	Price     float64 `validate:"gte=0"`
	Image     string
	Quantity  int     `validate:"gte=1"`
}

// CheckoutData is the POST /public/orders request body.
// Reference is a client-generated idempotency handle.
type CheckoutData struct {
	Reference     string          `validate:"required"`
	Customer      CustomerInfo    `validate:"required"`
	Items         []OrderItem     `validate:"required,min=1,dive"`
	Shipping      ShippingAddress `validate:"required"`
	ShippingCost  float64         `validate:"gte=0"`
	PaymentMethod string          `validate:"required"`
	CustomerID    string
}

// Subtotal sums line prices times quantities, excluding shipping.
func (c CheckoutData) Subtotal() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// OrderConfirmation is the server's answer to a checkout submission.
type OrderConfirmation struct {
	OrderNumber  string
	TotalAmount  float64
	Status       string
	CustomerName string
}

// An Order is a previously placed order read back for account pages.
type Order struct {
	OrderNumber string
	Items       []OrderItem
	TotalAmount float64
	Status      string
	CreatedAt   time.Time
}
