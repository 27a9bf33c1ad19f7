// Command seed-db loads owners, users, and products from a JSON fixture
// file into PostgreSQL. Fixture entries without an id get a freshly
// generated one.
package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sauna-shop/backend/internal/domain/owner"
	"github.com/sauna-shop/backend/internal/domain/product"
	"github.com/sauna-shop/backend/internal/domain/user"
	"github.com/sauna-shop/backend/internal/postgres"
)

type ownerJSON struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type userJSON struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	LastName     string `json:"last_name"`
	FirstName    string `json:"first_name"`
	Prefecture   string `json:"prefecture"`
	City         string `json:"city"`
	AddressExtra string `json:"address_extra"`
}

type productJSON struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

type fixtures struct {
	Owners   []ownerJSON   `json:"owners"`
	Users    []userJSON    `json:"users"`
	Products []productJSON `json:"products"`
}

func main() {
	app.Run(func(ctx context.Context, lg *zap.Logger, _ *app.Telemetry) error {
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		return run(ctx, lg, cfg)
	})
}

func run(ctx context.Context, lg *zap.Logger, cfg *Config) error {
	lg.Info("Reading fixtures", zap.String("path", cfg.SeedFile))

	data, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		return errors.Wrap(err, "read fixtures file")
	}

	var fx fixtures
	if err := json.Unmarshal(data, &fx); err != nil {
		return errors.Wrap(err, "parse fixtures JSON")
	}

	lg.Info("Connecting to database")

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return errors.Wrap(err, "create db pool")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	if err := seedOwners(ctx, lg, postgres.NewOwnerRepository(pool), fx.Owners); err != nil {
		return errors.Wrap(err, "seed owners")
	}
	if err := seedUsers(ctx, lg, postgres.NewUserRepository(pool), fx.Users); err != nil {
		return errors.Wrap(err, "seed users")
	}
	if err := seedProducts(ctx, lg, postgres.NewProductRepository(pool), fx.Products, cfg.Concurrency); err != nil {
		return errors.Wrap(err, "seed products")
	}

	lg.Info("Seed completed",
		zap.Int("owners", len(fx.Owners)),
		zap.Int("users", len(fx.Users)),
		zap.Int("products", len(fx.Products)),
	)
	return nil
}

func seedOwners(ctx context.Context, lg *zap.Logger, repo owner.Repository, entries []ownerJSON) error {
	for _, e := range entries {
		var (
			o   *owner.Owner
			err error
		)
		if e.ID == "" {
			o, err = owner.New(e.Name, e.Email)
		} else {
			o, err = owner.NewWithID(e.ID, e.Name, e.Email)
		}
		if err != nil {
			return errors.Wrapf(err, "owner %q", e.Name)
		}

		if err := repo.Save(ctx, o); err != nil {
			return err
		}
		lg.Info("Upserted owner", zap.String("id", o.ID), zap.String("name", o.Name))
	}
	return nil
}

func seedUsers(ctx context.Context, lg *zap.Logger, repo user.Repository, entries []userJSON) error {
	for _, e := range entries {
		var (
			u   *user.User
			err error
		)
		if e.ID == "" {
			u, err = user.New(e.Email, e.PhoneNumber, e.LastName, e.FirstName, e.Prefecture, e.City, e.AddressExtra)
		} else {
			u, err = user.NewWithID(e.ID, e.Email, e.PhoneNumber, e.LastName, e.FirstName, e.Prefecture, e.City, e.AddressExtra)
		}
		if err != nil {
			return errors.Wrapf(err, "user %q", e.Email)
		}

		if err := repo.Save(ctx, u); err != nil {
			return err
		}
		lg.Info("Upserted user", zap.String("id", u.ID), zap.String("email", u.Email))
	}
	return nil
}

func seedProducts(ctx context.Context, lg *zap.Logger, repo product.Repository, entries []productJSON, concurrency int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, e := range entries {
		g.Go(func() error {
			var (
				p   *product.Product
				err error
			)
			if e.ID == "" {
				p, err = product.New(e.OwnerID, e.Name, e.Description, e.Price, e.Stock)
			} else {
				p, err = product.NewWithID(e.ID, e.OwnerID, e.Name, e.Description, e.Price, e.Stock)
			}
			if err != nil {
				return errors.Wrapf(err, "product %q", e.Name)
			}

			if err := repo.Save(ctx, p); err != nil {
				return err
			}
			lg.Info("Upserted product", zap.String("id", p.ID), zap.String("name", p.Name))
			return nil
		})
	}

	return g.Wait()
}
