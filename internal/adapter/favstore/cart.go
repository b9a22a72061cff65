package favstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/glowmart/storefront/internal/core/domain"
)

type cartItemRow struct {
	ID        string  `db:"id"`
	ProductID string  `db:"product_id"`
	Name      string  `db:"name"`
	Brand     string  `db:"brand"`
	Price     float64 `db:"price"`
	Image     string  `db:"image"`
	Quantity  int     `db:"quantity"`
}

func (r cartItemRow) toDomain() domain.CartItem {
	return domain.CartItem(r)
}

func (s *Store) CartItems(ctx context.Context) ([]domain.CartItem, error) {
	const op = "Store.CartItems"

	var rows []cartItemRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT id, product_id, name, brand, price, image, quantity
		 FROM cart_items ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]domain.CartItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.toDomain())
	}
	return items, nil
}

// AddCartItem inserts a line or, when the product is already in the
// cart, bumps its quantity. The stored line is returned with its id.
func (s *Store) AddCartItem(
	ctx context.Context, item domain.CartItem,
) (domain.CartItem, error) {
	const op = "Store.AddCartItem"

	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cart_items(id, product_id, name, brand, price, image, quantity)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(product_id) DO UPDATE
		 SET quantity = cart_items.quantity + excluded.quantity`,
		item.ID, item.ProductID, item.Name, item.Brand,
		item.Price, item.Image, item.Quantity,
	)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("%s: %w", op, err)
	}

	var row cartItemRow
	err = s.db.GetContext(ctx, &row,
		`SELECT id, product_id, name, brand, price, image, quantity
		 FROM cart_items WHERE product_id = ?`, item.ProductID)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("%s: %w", op, err)
	}
	return row.toDomain(), nil
}

// SetCartQuantity updates a line; zero or less removes it.
func (s *Store) SetCartQuantity(ctx context.Context, itemID string, quantity int) error {
	const op = "Store.SetCartQuantity"

	if quantity < 1 {
		return s.RemoveCartItem(ctx, itemID)
	}

	_, err := s.db.ExecContext(ctx,
		`UPDATE cart_items SET quantity = ? WHERE id = ?`, quantity, itemID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Store) RemoveCartItem(ctx context.Context, itemID string) error {
	const op = "Store.RemoveCartItem"

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE id = ?`, itemID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Store) ClearCart(ctx context.Context) error {
	const op = "Store.ClearCart"

	if _, err := s.db.ExecContext(ctx, `DELETE FROM cart_items`); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
