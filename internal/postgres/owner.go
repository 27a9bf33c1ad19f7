package postgres

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sauna-shop/backend/internal/domain/owner"
)

const (
	getOwnerByIDSQL = `SELECT id, name, email FROM owners WHERE id = $1`

	upsertOwnerSQL = `INSERT INTO owners (id, name, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email`
)

// ErrOwnerNotFound is returned when a requested owner does not exist.
var ErrOwnerNotFound = errors.New("owner not found")

var _ owner.Repository = (*OwnerRepository)(nil)

// OwnerRepository implements owner.Repository backed by PostgreSQL.
type OwnerRepository struct {
	pool *pgxpool.Pool
}

// NewOwnerRepository returns an OwnerRepository that uses the given pool.
func NewOwnerRepository(pool *pgxpool.Pool) *OwnerRepository {
	return &OwnerRepository{pool: pool}
}

// FindByID returns a single owner by their identifier.
func (r *OwnerRepository) FindByID(ctx context.Context, id string) (*owner.Owner, error) {
	rows, err := r.pool.Query(ctx, getOwnerByIDSQL, id)
	if err != nil {
		return nil, fmt.Errorf("getting owner %q: %w", id, err)
	}

	o, err := pgx.CollectExactlyOneRow(rows, scanOwner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("getting owner %q: %w", id, err)
	}
	return &o, nil
}

// Save inserts the owner or updates all fields of an existing row.
func (r *OwnerRepository) Save(ctx context.Context, o *owner.Owner) error {
	_, err := r.pool.Exec(ctx, upsertOwnerSQL, o.ID, o.Name, o.Email)
	if err != nil {
		return fmt.Errorf("saving owner %q: %w", o.ID, err)
	}
	return nil
}

func scanOwner(row pgx.CollectableRow) (owner.Owner, error) {
	var id, name, email string
	if err := row.Scan(&id, &name, &email); err != nil {
		return owner.Owner{}, err
	}

	o, err := owner.NewWithID(id, name, email)
	if err != nil {
		return owner.Owner{}, err
	}
	return *o, nil
}
