package favstore

import (
	"context"
	"fmt"

	"github.com/glowmart/storefront/internal/core/domain"
)

type favoriteRow struct {
	ProductID string  `db:"product_id"`
	Name      string  `db:"name"`
	Brand     string  `db:"brand"`
	Price     float64 `db:"price"`
	Image     string  `db:"image"`
}

func (s *Store) Favorites(ctx context.Context) ([]domain.FavoriteItem, error) {
	const op = "Store.Favorites"

	var rows []favoriteRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT product_id, name, brand, price, image
		 FROM favorites ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]domain.FavoriteItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, domain.FavoriteItem(r))
	}
	return items, nil
}

func (s *Store) AddFavorite(ctx context.Context, item domain.FavoriteItem) error {
	const op = "Store.AddFavorite"

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO favorites(product_id, name, brand, price, image)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(product_id) DO NOTHING`,
		item.ProductID, item.Name, item.Brand, item.Price, item.Image,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Store) RemoveFavorite(ctx context.Context, productID string) error {
	const op = "Store.RemoveFavorite"

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE product_id = ?`, productID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Store) IsFavorite(ctx context.Context, productID string) (bool, error) {
	const op = "Store.IsFavorite"

	var n int
	err := s.db.GetContext(ctx, &n,
		`SELECT COUNT(1) FROM favorites WHERE product_id = ?`, productID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return n > 0, nil
}
