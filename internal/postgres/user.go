package postgres

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sauna-shop/backend/internal/domain/user"
)

const (
	getUserByIDSQL = `SELECT id, email, phone_number, last_name, first_name, prefecture, city, address_extra
		FROM users WHERE id = $1`

	listUsersSQL = `SELECT id, email, phone_number, last_name, first_name, prefecture, city, address_extra
		FROM users ORDER BY id`

	upsertUserSQL = `INSERT INTO users (id, email, phone_number, last_name, first_name, prefecture, city, address_extra)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			phone_number = EXCLUDED.phone_number,
			last_name = EXCLUDED.last_name,
			first_name = EXCLUDED.first_name,
			prefecture = EXCLUDED.prefecture,
			city = EXCLUDED.city,
			address_extra = EXCLUDED.address_extra`
)

// ErrUserNotFound is returned when a requested user does not exist.
var ErrUserNotFound = errors.New("user not found")

var _ user.Repository = (*UserRepository)(nil)

// UserRepository implements user.Repository backed by PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a UserRepository that uses the given pool.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// FindByID returns a single user by their identifier.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	rows, err := r.pool.Query(ctx, getUserByIDSQL, id)
	if err != nil {
		return nil, fmt.Errorf("getting user %q: %w", id, err)
	}

	u, err := pgx.CollectExactlyOneRow(rows, scanUser)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user %q: %w", id, err)
	}
	return &u, nil
}

// FindAll returns every user ordered by id.
func (r *UserRepository) FindAll(ctx context.Context) ([]user.User, error) {
	rows, err := r.pool.Query(ctx, listUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return pgx.CollectRows(rows, scanUser)
}

// Save inserts the user or updates all fields of an existing row.
func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	_, err := r.pool.Exec(ctx, upsertUserSQL,
		u.ID, u.Email, u.PhoneNumber, u.LastName, u.FirstName,
		u.Address.Prefecture, u.Address.City, u.Address.Extra,
	)
	if err != nil {
		return fmt.Errorf("saving user %q: %w", u.ID, err)
	}
	return nil
}

func scanUser(row pgx.CollectableRow) (user.User, error) {
	var id, email, phoneNumber, lastName, firstName, prefecture, city, addressExtra string
	err := row.Scan(&id, &email, &phoneNumber, &lastName, &firstName, &prefecture, &city, &addressExtra)
	if err != nil {
		return user.User{}, err
	}

	u, err := user.NewWithID(id, email, phoneNumber, lastName, firstName, prefecture, city, addressExtra)
	if err != nil {
		return user.User{}, err
	}
	return *u, nil
}
