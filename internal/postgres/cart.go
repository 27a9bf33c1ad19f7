package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sauna-shop/backend/internal/domain/cart"
)

const (
	getCartByUserIDSQL = `SELECT products FROM carts WHERE user_id = $1`

	upsertCartSQL = `INSERT INTO carts (user_id, products)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET products = EXCLUDED.products`
)

var _ cart.Repository = (*CartRepository)(nil)

// CartRepository implements cart.Repository backed by PostgreSQL. Cart lines
// are stored as a JSONB array on a single row per user.
type CartRepository struct {
	pool *pgxpool.Pool
}

// NewCartRepository returns a CartRepository that uses the given pool.
func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

// FindByUserID returns the user's cart. Returns cart.ErrNotFound when the
// user has no stored cart.
func (r *CartRepository) FindByUserID(ctx context.Context, userID string) (*cart.Cart, error) {
	var productsJSON []byte
	err := r.pool.QueryRow(ctx, getCartByUserIDSQL, userID).Scan(&productsJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cart.ErrNotFound
		}
		return nil, fmt.Errorf("getting cart for user %q: %w", userID, err)
	}

	var lines []cart.CartProduct
	if err := json.Unmarshal(productsJSON, &lines); err != nil {
		return nil, fmt.Errorf("unmarshaling cart products: %w", err)
	}

	// Rebuild through the validating mutators so stored data is re-checked.
	c, err := cart.New(userID)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		if err := c.AddProducts(line.ProductID, line.Quantity); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Save inserts the cart or replaces an existing one for the same user.
func (r *CartRepository) Save(ctx context.Context, c *cart.Cart) error {
	productsJSON, err := json.Marshal(c.Products)
	if err != nil {
		return fmt.Errorf("marshaling cart products: %w", err)
	}

	_, err = r.pool.Exec(ctx, upsertCartSQL, c.UserID, productsJSON)
	if err != nil {
		return fmt.Errorf("saving cart for user %q: %w", c.UserID, err)
	}
	return nil
}
