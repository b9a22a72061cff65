package domain

// CustomerInfo is the display shape for customer identity data.
// It is read from the remote API or prefilled from identity-provider
// token claims; the client never writes it back except via UpdateCustomer.
type CustomerInfo struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Phone     string
}

// Merge fills empty fields of c from other, preferring existing values.
// Used to overlay identity-provider auto-fill onto user-entered data.
func (c CustomerInfo) Merge(other CustomerInfo) CustomerInfo {
	if c.FirstName == "" {
		c.FirstName = other.FirstName
	}
	if c.LastName == "" {
		c.LastName = other.LastName
	}
	if c.Email == "" {
		c.Email = other.Email
	}
	if c.Phone == "" {
		c.Phone = other.Phone
	}
	return c
}

type Customer struct {
	ID    string
	Info  CustomerInfo
	Addrs []ShippingAddress
}

type ShippingAddress struct {
	Line1      string `validate:"required"`
	Line2      string
	City       string `validate:"required"`
	State      string
	PostalCode string `validate:"required"`
	Country    string `validate:"required"`
}
