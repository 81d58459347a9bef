// internal/adapters/out/db/order_archive_pg.go
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	orderdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/order"
)

// OrderArchivePG mirrors placed orders into PostgreSQL for out-of-band
// reporting. Firestore stays the system of record; rows here are
// insert-only copies and a duplicate insert is ignored.
type OrderArchivePG struct {
	DB *sql.DB
}

func NewOrderArchivePG(db *sql.DB) *OrderArchivePG {
	return &OrderArchivePG{DB: db}
}

// EnsureSchema creates the archive table when missing.
func (r *OrderArchivePG) EnsureSchema(ctx context.Context) error {
	if r == nil || r.DB == nil {
		return errors.New("order_archive_pg: db is nil")
	}

	const ddl = `
CREATE TABLE IF NOT EXISTS order_archive (
  id         TEXT PRIMARY KEY,
  user_id    TEXT NOT NULL,
  items      JSONB NOT NULL,
  total      NUMERIC(12,2) NOT NULL,
  currency   TEXT NOT NULL,
  status     TEXT NOT NULL,
  created_at TIMESTAMPTZ NOT NULL
)`
	if _, err := r.DB.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("order_archive_pg: ensure schema: %w", err)
	}
	return nil
}

func (r *OrderArchivePG) Archive(ctx context.Context, o orderdom.Order) error {
	if r == nil || r.DB == nil {
		return errors.New("order_archive_pg: db is nil")
	}

	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("order_archive_pg: marshal items: %w", err)
	}

	const q = `
INSERT INTO order_archive (id, user_id, items, total, currency, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING`
	if _, err := r.DB.ExecContext(ctx, q,
		o.ID, o.UserID, items, o.Total.String(), o.Currency, o.Status, o.CreatedAt,
	); err != nil {
		return fmt.Errorf("order_archive_pg: insert: %w", err)
	}
	return nil
}
