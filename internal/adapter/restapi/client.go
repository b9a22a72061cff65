// Package restapi is the typed client for the remote storefront API.
// Transport and decode failures are normalized into wrapped errors at
// this boundary; callers receive a typed result or an error message,
// nothing ever panics across the client surface.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
)

var _ port.ProductReader = (*Client)(nil)
var _ port.OrderSubmitter = (*Client)(nil)
var _ port.CustomerReader = (*Client)(nil)
var _ port.CustomerWriter = (*Client)(nil)

var (
	ErrNotFound = errors.New("not found")

	// ErrAPIFailure marks a well-formed envelope with success=false.
	ErrAPIFailure = errors.New("api failure")
)

type Client struct {
	baseURL string
	http    *http.Client
}

type Opt func(*Client) error

// HTTPClientOpt overrides the underlying HTTP client, used by tests and
// by callers that need custom transports.
func HTTPClientOpt(hc *http.Client) Opt {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client is nil")
		}
		c.http = hc
		return nil
	}
}

func New(baseURL string, opts ...Opt) (*Client, error) {
	const op = "restapi.New"

	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("%s: base URL is empty", op)
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return c, nil
}

// getEnvelope performs one GET, decodes the uniform envelope and
// normalizes every failure mode into an error. A single request per
// call: no retries, no caching.
func getEnvelope[T any](
	ctx context.Context, c *Client, op, path string, query url.Values,
) (envelope[T], error) {
	var env envelope[T]

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return env, fmt.Errorf("%s: %w", op, err)
	}
	return doEnvelope[T](c, op, req)
}

func postEnvelope[T any](
	ctx context.Context, c *Client, op, path string, body any,
) (envelope[T], error) {
	return sendEnvelope[T](ctx, c, op, http.MethodPost, path, body)
}

func putEnvelope[T any](
	ctx context.Context, c *Client, op, path string, body any,
) (envelope[T], error) {
	return sendEnvelope[T](ctx, c, op, http.MethodPut, path, body)
}

func sendEnvelope[T any](
	ctx context.Context, c *Client, op, method, path string, body any,
) (envelope[T], error) {
	var env envelope[T]

	b, err := json.Marshal(body)
	if err != nil {
		return env, fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(
		ctx, method, c.baseURL+path, bytes.NewReader(b),
	)
	if err != nil {
		return env, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return doEnvelope[T](c, op, req)
}

func doEnvelope[T any](c *Client, op string, req *http.Request) (envelope[T], error) {
	log := slog.With("op", op)

	var env envelope[T]

	log.Debug("request", "method", req.Method, "url", req.URL.String())

	resp, err := c.http.Do(req)
	if err != nil {
		return env, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return env, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return env, fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, 16<<20)).Decode(&env); err != nil {
		return env, fmt.Errorf("%s: %w", op, err)
	}

	log.Debug("response", "success", env.Success, "message", env.Message)

	if !env.Success {
		return env, fmt.Errorf("%s: %w: %s", op, ErrAPIFailure, env.Message)
	}
	return env, nil
}

func (c *Client) Products(
	ctx context.Context, f domain.ProductFilters,
) (domain.ProductPage, error) {
	const op = "Client.Products"

	env, err := getEnvelope[[]Product](ctx, c, op, "/products", filterValues(f))
	if err != nil {
		return domain.ProductPage{}, err
	}

	page := domain.ProductPage{Products: productsToDomain(env.Data)}
	if env.Pagination != nil {
		page.Pagination = env.Pagination.toDomain()
	}
	return page, nil
}

func (c *Client) ProductByID(ctx context.Context, id string) (domain.Product, error) {
	const op = "Client.ProductByID"

	if id == "" {
		return domain.Product{}, fmt.Errorf("%s: product id is empty", op)
	}

	env, err := getEnvelope[Product](
		ctx, c, op, "/products/"+url.PathEscape(id), nil,
	)
	if err != nil {
		return domain.Product{}, err
	}
	return env.Data.toDomain(), nil
}

func (c *Client) Featured(ctx context.Context, limit int) ([]domain.Product, error) {
	return c.slice(ctx, "Client.Featured", "/products/featured", limit)
}

func (c *Client) NewArrivals(ctx context.Context, limit int) ([]domain.Product, error) {
	return c.slice(ctx, "Client.NewArrivals", "/products/new-arrivals", limit)
}

func (c *Client) BestSellers(ctx context.Context, limit int) ([]domain.Product, error) {
	return c.slice(ctx, "Client.BestSellers", "/products/best-sellers", limit)
}

func (c *Client) OnSale(ctx context.Context, limit int) ([]domain.Product, error) {
	return c.slice(ctx, "Client.OnSale", "/products/on-sale", limit)
}

func (c *Client) slice(
	ctx context.Context, op, path string, limit int,
) ([]domain.Product, error) {
	env, err := getEnvelope[[]Product](ctx, c, op, path, limitValues(limit))
	if err != nil {
		return nil, err
	}
	return productsToDomain(env.Data), nil
}

func (c *Client) Related(
	ctx context.Context, id string, limit int,
) ([]domain.Product, error) {
	const op = "Client.Related"

	if id == "" {
		return nil, fmt.Errorf("%s: product id is empty", op)
	}

	path := "/products/" + url.PathEscape(id) + "/related"
	env, err := getEnvelope[[]Product](ctx, c, op, path, limitValues(limit))
	if err != nil {
		return nil, err
	}
	return productsToDomain(env.Data), nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	const op = "Client.Categories"

	env, err := getEnvelope[[]string](ctx, c, op, "/products/categories", nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) Brands(ctx context.Context) ([]string, error) {
	const op = "Client.Brands"

	env, err := getEnvelope[[]string](ctx, c, op, "/products/brands", nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) SearchProducts(
	ctx context.Context, query string, limit int,
) ([]domain.Product, error) {
	const op = "Client.SearchProducts"

	q := limitValues(limit)
	q.Set("search", query)
	env, err := getEnvelope[[]Product](ctx, c, op, "/products", q)
	if err != nil {
		return nil, err
	}
	return productsToDomain(env.Data), nil
}

func (c *Client) SubmitOrder(
	ctx context.Context, data domain.CheckoutData,
) (domain.OrderConfirmation, error) {
	const op = "Client.SubmitOrder"

	env, err := postEnvelope[OrderConfirmation](
		ctx, c, op, "/public/orders", checkoutToWire(data),
	)
	if err != nil {
		return domain.OrderConfirmation{}, err
	}
	return domain.OrderConfirmation(env.Data), nil
}

func (c *Client) Customer(ctx context.Context, id string) (domain.Customer, error) {
	const op = "Client.Customer"

	if id == "" {
		return domain.Customer{}, fmt.Errorf("%s: customer id is empty", op)
	}

	env, err := getEnvelope[Customer](
		ctx, c, op, "/customers/"+url.PathEscape(id), nil,
	)
	if err != nil {
		return domain.Customer{}, err
	}
	return env.Data.toDomain(), nil
}

func (c *Client) UpdateCustomer(
	ctx context.Context, id string, info domain.CustomerInfo,
) (domain.Customer, error) {
	const op = "Client.UpdateCustomer"

	if id == "" {
		return domain.Customer{}, fmt.Errorf("%s: customer id is empty", op)
	}

	env, err := putEnvelope[Customer](
		ctx, c, op, "/customers/"+url.PathEscape(id), CustomerInfo(info),
	)
	if err != nil {
		return domain.Customer{}, err
	}
	return env.Data.toDomain(), nil
}

func (c *Client) CustomerOrders(ctx context.Context, id string) ([]domain.Order, error) {
	const op = "Client.CustomerOrders"

	if id == "" {
		return nil, fmt.Errorf("%s: customer id is empty", op)
	}

	path := "/customers/" + url.PathEscape(id) + "/orders"
	env, err := getEnvelope[[]Order](ctx, c, op, path, nil)
	if err != nil {
		return nil, err
	}
	return ordersToDomain(env.Data), nil
}

func (c *Client) FindCustomer(
	ctx context.Context, email, phone string,
) (domain.Customer, error) {
	const op = "Client.FindCustomer"

	env, err := getEnvelope[Customer](
		ctx, c, op, "/customers/find", findValues(email, phone),
	)
	if err != nil {
		return domain.Customer{}, err
	}
	return env.Data.toDomain(), nil
}

func (c *Client) FindCustomerOrders(
	ctx context.Context, email, phone string,
) ([]domain.Order, error) {
	const op = "Client.FindCustomerOrders"

	env, err := getEnvelope[[]Order](
		ctx, c, op, "/customers/orders/find", findValues(email, phone),
	)
	if err != nil {
		return nil, err
	}
	return ordersToDomain(env.Data), nil
}

func findValues(email, phone string) url.Values {
	q := url.Values{}
	if email != "" {
		q.Set("email", email)
	}
	if phone != "" {
		q.Set("phoneNumber", phone)
	}
	return q
}

func ordersToDomain(os []Order) []domain.Order {
	out := make([]domain.Order, 0, len(os))
	for _, o := range os {
		out = append(out, o.toDomain())
	}
	return out
}
