package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sauna-shop/backend/internal/domain/order"
)

const createOrderSQL = `INSERT INTO orders (id, user_id, total_amount, products, ordered_at)
	VALUES ($1, $2, $3, $4, $5)`

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Save persists a new order. The line-item snapshots are serialized to JSON
// for storage in the JSONB column.
func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	productsJSON, err := json.Marshal(o.Products)
	if err != nil {
		return fmt.Errorf("marshaling order products: %w", err)
	}

	_, err = r.pool.Exec(ctx, createOrderSQL,
		o.ID, o.UserID, o.TotalAmount, productsJSON, o.OrderedAt,
	)
	if err != nil {
		return fmt.Errorf("saving order %q: %w", o.ID, err)
	}

	return nil
}
