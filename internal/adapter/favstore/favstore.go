// Package favstore persists the cart and favorites lists in a local
// sqlite database, behind the injected store interfaces. Cart and
// favorites are page-level state in the storefront; keeping them in one
// small file survives restarts without touching the remote API.
package favstore

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/glowmart/storefront/internal/core/port"
)

var _ port.CartStore = (*Store)(nil)
var _ port.FavoritesStore = (*Store)(nil)

type Store struct {
	db *sqlx.DB
}

func Open(dsn string) (*Store, error) {
	const op = "favstore.Open"
	log := slog.With("op", op)

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := ensureSchema(db); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("store is ready", "dsn", dsn)
	return &Store{db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS cart_items(
	id TEXT PRIMARY KEY,
	product_id TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	brand TEXT NOT NULL DEFAULT '',
	price NUMERIC NOT NULL CHECK (price >= 0),
	image TEXT NOT NULL DEFAULT '',
	quantity INTEGER NOT NULL CHECK (quantity >= 1)
);

CREATE TABLE IF NOT EXISTS favorites(
	product_id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	brand TEXT NOT NULL DEFAULT '',
	price NUMERIC NOT NULL CHECK (price >= 0),
	image TEXT NOT NULL DEFAULT ''
);`
	_, err := db.Exec(schema)
	return err
}

func (s *Store) Close() {
	const op = "Store.Close"
	log := slog.With("op", op)

	if err := s.db.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("store is closed")
}
