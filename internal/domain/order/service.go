package order

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"

	"github.com/sauna-shop/backend/internal/domain/cart"
	"github.com/sauna-shop/backend/internal/domain/product"
)

// ProductNotFoundError indicates a cart line references a product that does
// not exist in the catalog.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// Service encapsulates order placement business logic.
type Service struct {
	orders   Repository
	products product.Repository
}

// NewService creates an order Service with the required repositories.
func NewService(orders Repository, products product.Repository) *Service {
	return &Service{
		orders:   orders,
		products: products,
	}
}

// PlaceOrder converts the cart into a persisted order and returns the new
// order's id. Products are fetched in a single batch, then each cart line,
// in cart order, is snapshotted at the product's current price, its stock
// consumed and the product saved before the next line is processed.
//
// Stock decrements are committed line by line: a failure part-way through
// surfaces immediately, leaves earlier decrements in place, and persists no
// order. Callers needing stronger guarantees must wrap the repositories in
// a transactional implementation.
func (s *Service) PlaceOrder(ctx context.Context, c *cart.Cart, now time.Time) (string, error) {
	fetched, err := s.products.FindByIDs(ctx, c.ProductIDs())
	if err != nil {
		return "", errors.Wrap(err, "find products")
	}

	productMap := make(map[string]*product.Product, len(fetched))
	for i := range fetched {
		productMap[fetched[i].ID] = &fetched[i]
	}

	orderProducts := make([]OrderProduct, 0, len(c.Products))
	for _, line := range c.Products {
		p, ok := productMap[line.ProductID]
		if !ok {
			return "", &ProductNotFoundError{ProductID: line.ProductID}
		}

		op, err := NewOrderProduct(line.ProductID, p.Price, line.Quantity)
		if err != nil {
			return "", err
		}
		orderProducts = append(orderProducts, op)

		if err := p.Consume(line.Quantity); err != nil {
			return "", err
		}

		if err := s.products.Save(ctx, p); err != nil {
			return "", errors.Wrapf(err, "save product %s", p.ID)
		}
	}

	o, err := New(c.UserID, CalcTotalAmount(orderProducts), orderProducts, now)
	if err != nil {
		return "", err
	}

	if err := s.orders.Save(ctx, o); err != nil {
		return "", errors.Wrap(err, "save order")
	}

	return o.ID, nil
}
