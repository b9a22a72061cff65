package restapi

import (
	"encoding/json"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
)

// flexStrings accepts the remote API's scalar-or-array facet fields
// (e.g. skinType as "Dry" or ["Dry","Oily"]) and normalizes them to a
// slice on decode, so nothing downstream branches on shape.
type flexStrings []string

func (f *flexStrings) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = nil
		return nil
	}

	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		if one == "" {
			*f = nil
		} else {
			*f = flexStrings{one}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*f = flexStrings(many)
	return nil
}

type (
	Product struct {
		ID            string      `json:"_id"`
		Name          string      `json:"name"`
		Brand         string      `json:"brand"`
		Description   string      `json:"description"`
		SKU           string      `json:"sku"`
		Status        string      `json:"status"`
		Price         float64     `json:"price"`
		OriginalPrice float64     `json:"originalPrice"`
		Discount      int         `json:"discount"`
		InStock       bool        `json:"inStock"`
		Stock         int         `json:"stock"`
		Image         string      `json:"image"`
		Images        []string    `json:"images"`
		Rating        float64     `json:"rating"`
		ReviewCount   int         `json:"reviewCount"`

		Category        string      `json:"category"`
		ProductType     string      `json:"productType"`
		SkinType        flexStrings `json:"skinType"`
		HairType        flexStrings `json:"hairType"`
		HairConcern     flexStrings `json:"hairConcern"`
		HairTexture     flexStrings `json:"hairTexture"`
		SkinConcern     flexStrings `json:"skinConcern"`
		SkinTone        flexStrings `json:"skinTone"`
		Finish          flexStrings `json:"finish"`
		FragranceFamily string      `json:"fragranceFamily"`
		Concentration   string      `json:"concentration"`
		Season          flexStrings `json:"season"`
		Ingredients     flexStrings `json:"ingredients"`
		Benefits        flexStrings `json:"benefits"`

		IsNew                    bool `json:"isNew"`
		IsSale                   bool `json:"isSale"`
		IsTrending               bool `json:"isTrending"`
		CrueltyFree              bool `json:"crueltyFree"`
		Vegan                    bool `json:"vegan"`
		Luxury                   bool `json:"luxury"`
		CleanBeauty              bool `json:"cleanBeauty"`
		DermatologistRecommended bool `json:"dermatologistRecommended"`
		SalonProfessional        bool `json:"salonProfessional"`
		SulfateFree              bool `json:"sulfateFree"`
		LongLasting              bool `json:"longLasting"`
		FragranceFree            bool `json:"fragranceFree"`
	}

	Pagination struct {
		CurrentPage  int  `json:"currentPage"`
		TotalPages   int  `json:"totalPages"`
		TotalItems   int  `json:"totalItems"`
		ItemsPerPage int  `json:"itemsPerPage"`
		HasNextPage  bool `json:"hasNextPage"`
		HasPrevPage  bool `json:"hasPrevPage"`
	}

	CustomerInfo struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Phone     string `json:"phoneNumber"`
	}

	Customer struct {
		ID        string            `json:"_id"`
		Info      CustomerInfo      `json:"info"`
		Addresses []ShippingAddress `json:"addresses"`
	}

	ShippingAddress struct {
		Line1      string `json:"line1"`
		Line2      string `json:"line2"`
		City       string `json:"city"`
		State      string `json:"state"`
		PostalCode string `json:"postalCode"`
		Country    string `json:"country"`
	}

	OrderItem struct {
		ProductID string  `json:"productId"`
		Name      string  `json:"name"`
		Brand     string  `json:"brand"`
		Price     float64 `json:"price"`
		Image     string  `json:"image"`
		Quantity  int     `json:"quantity"`
	}

	CheckoutRequest struct {
		Reference     string          `json:"reference"`
		Customer      CustomerInfo    `json:"customerInfo"`
		Items         []OrderItem     `json:"items"`
		Shipping      ShippingAddress `json:"shippingAddress"`
		ShippingCost  float64         `json:"shippingCost"`
		PaymentMethod string          `json:"paymentMethod"`
		CustomerID    string          `json:"customerId,omitempty"`
	}

	OrderConfirmation struct {
		OrderNumber  string  `json:"orderNumber"`
		TotalAmount  float64 `json:"totalAmount"`
		Status       string  `json:"status"`
		CustomerName string  `json:"customerName"`
	}

	Order struct {
		OrderNumber string      `json:"orderNumber"`
		Items       []OrderItem `json:"items"`
		TotalAmount float64     `json:"totalAmount"`
		Status      string      `json:"status"`
		CreatedAt   time.Time   `json:"createdAt"`
	}
)

// envelope is the uniform response wrapper every endpoint returns.
type envelope[T any] struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       T           `json:"data"`
	Pagination *Pagination `json:"pagination"`
}

func (p Product) toDomain() domain.Product {
	return domain.Product{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Description:   p.Description,
		SKU:           p.SKU,
		Status:        p.Status,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Discount:      p.Discount,
		InStock:       p.InStock,
		Stock:         p.Stock,
		Image:         p.Image,
		Images:        p.Images,
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,

		Category:        p.Category,
		ProductType:     p.ProductType,
		SkinType:        p.SkinType,
		HairType:        p.HairType,
		HairConcern:     p.HairConcern,
		HairTexture:     p.HairTexture,
		SkinConcern:     p.SkinConcern,
		SkinTone:        p.SkinTone,
		Finish:          p.Finish,
		FragranceFamily: p.FragranceFamily,
		Concentration:   p.Concentration,
		Season:          p.Season,
		Ingredients:     p.Ingredients,
		Benefits:        p.Benefits,

		Flags: domain.ProductFlags{
			New:                      p.IsNew,
			Sale:                     p.IsSale,
			Trending:                 p.IsTrending,
			CrueltyFree:              p.CrueltyFree,
			Vegan:                    p.Vegan,
			Luxury:                   p.Luxury,
			CleanBeauty:              p.CleanBeauty,
			DermatologistRecommended: p.DermatologistRecommended,
			SalonProfessional:        p.SalonProfessional,
			SulfateFree:              p.SulfateFree,
			LongLasting:              p.LongLasting,
			FragranceFree:            p.FragranceFree,
		},
	}
}

func productsToDomain(ps []Product) []domain.Product {
	out := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.toDomain())
	}
	return out
}

func (p Pagination) toDomain() *domain.Pagination {
	return &domain.Pagination{
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		TotalItems:   p.TotalItems,
		ItemsPerPage: p.ItemsPerPage,
		HasNextPage:  p.HasNextPage,
		HasPrevPage:  p.HasPrevPage,
	}
}

func (c Customer) toDomain() domain.Customer {
	addrs := make([]domain.ShippingAddress, 0, len(c.Addresses))
	for _, a := range c.Addresses {
		addrs = append(addrs, domain.ShippingAddress(a))
	}
	return domain.Customer{
		ID:    c.ID,
		Info:  domain.CustomerInfo(c.Info),
		Addrs: addrs,
	}
}

func (o Order) toDomain() domain.Order {
	items := make([]domain.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, domain.OrderItem(it))
	}
	return domain.Order{
		OrderNumber: o.OrderNumber,
		Items:       items,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
}

func checkoutToWire(c domain.CheckoutData) CheckoutRequest {
	items := make([]OrderItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, OrderItem(it))
	}
	return CheckoutRequest{
		Reference:     c.Reference,
		Customer:      CustomerInfo(c.Customer),
		Items:         items,
		Shipping:      ShippingAddress(c.Shipping),
		ShippingCost:  c.ShippingCost,
		PaymentMethod: c.PaymentMethod,
		CustomerID:    c.CustomerID,
	}
}
