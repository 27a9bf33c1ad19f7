// Package product models a catalog item owned by a seller, including the
// stock consumption rule used by order placement.
package product

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sauna-shop/backend/internal/domain/validation"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// InsufficientStockError indicates a consume request exceeds available stock.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Stock     int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Stock)
}

const (
	nameLengthMin = 1
	nameLengthMax = 100

	descriptionLengthMin = 1
	descriptionLengthMax = 1000
)

// Product represents a catalog item available for purchase.
type Product struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}

// New creates a product with a freshly generated identifier.
func New(ownerID, name, description string, price decimal.Decimal, stock int) (*Product, error) {
	return NewWithID(uuid.New().String(), ownerID, name, description, price, stock)
}

// NewWithID reconstructs a product with a caller-supplied identifier, e.g.
// when loading from storage. All field invariants are re-checked.
func NewWithID(id, ownerID, name, description string, price decimal.Decimal, stock int) (*Product, error) {
	if !validation.ValidID(id) {
		return nil, validation.NewError("id", validation.CodeInvalidID)
	}
	if !validation.ValidID(ownerID) {
		return nil, validation.NewError("owner_id", validation.CodeInvalidID)
	}
	if !validation.LengthInRange(name, nameLengthMin, nameLengthMax) {
		return nil, validation.NewError("name", validation.CodeInvalidName)
	}
	if !validation.LengthInRange(description, descriptionLengthMin, descriptionLengthMax) {
		return nil, validation.NewError("description", validation.CodeInvalidDescription)
	}
	if price.LessThan(decimal.NewFromInt(1)) {
		return nil, validation.NewError("price", validation.CodeInvalidPrice)
	}
	if stock < 0 {
		return nil, validation.NewError("stock", validation.CodeInvalidStock)
	}

	return &Product{
		ID:          id,
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
	}, nil
}

// Consume decrements the stock by quantity. When quantity exceeds the
// available stock the product is left unchanged and an
// InsufficientStockError is returned.
func (p *Product) Consume(quantity int) error {
	if quantity > p.Stock {
		return &InsufficientStockError{ProductID: p.ID, Requested: quantity, Stock: p.Stock}
	}
	p.Stock -= quantity
	return nil
}

// Repository defines persistence operations for products. FindByIDs may
// return fewer products than requested ids; callers detect missing ids
// themselves.
type Repository interface {
	FindByID(ctx context.Context, id string) (*Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]Product, error)
	Save(ctx context.Context, product *Product) error
}
