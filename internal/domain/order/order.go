// Package order models a completed purchase and the service that turns a
// shopping cart into one.
package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sauna-shop/backend/internal/domain/validation"
)

// OrderProduct is an immutable line-item snapshot. The price is captured at
// order-placement time so later product price changes never alter historical
// orders.
type OrderProduct struct {
	ProductID string          `json:"product_id"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// NewOrderProduct validates the product id and quantity and returns the
// snapshot line.
func NewOrderProduct(productID string, price decimal.Decimal, quantity int) (OrderProduct, error) {
	if !validation.ValidID(productID) {
		return OrderProduct{}, validation.NewError("product_id", validation.CodeInvalidID)
	}
	if quantity < 1 {
		return OrderProduct{}, validation.NewError("quantity", validation.CodeInvalidQuantity)
	}
	return OrderProduct{ProductID: productID, Price: price, Quantity: quantity}, nil
}

// Order represents a completed customer order. It is created exactly once by
// the Service and immutable thereafter.
type Order struct {
	ID          string
	UserID      string
	TotalAmount decimal.Decimal
	Products    []OrderProduct
	OrderedAt   time.Time
}

// New creates an order with a freshly generated identifier.
func New(userID string, totalAmount decimal.Decimal, products []OrderProduct, orderedAt time.Time) (*Order, error) {
	return NewWithID(uuid.New().String(), userID, totalAmount, products, orderedAt)
}

// NewWithID reconstructs an order with a caller-supplied identifier. An
// order must contain at least one line item.
func NewWithID(id, userID string, totalAmount decimal.Decimal, products []OrderProduct, orderedAt time.Time) (*Order, error) {
	if !validation.ValidID(id) {
		return nil, validation.NewError("id", validation.CodeInvalidID)
	}
	if !validation.ValidID(userID) {
		return nil, validation.NewError("user_id", validation.CodeInvalidID)
	}
	if len(products) == 0 {
		return nil, validation.NewError("products", validation.CodeEmptyOrderProducts)
	}

	return &Order{
		ID:          id,
		UserID:      userID,
		TotalAmount: totalAmount,
		Products:    products,
		OrderedAt:   orderedAt,
	}, nil
}

// ProductIDs returns the product ids of all line items in order.
func (o *Order) ProductIDs() []string {
	ids := make([]string, len(o.Products))
	for i, p := range o.Products {
		ids[i] = p.ProductID
	}
	return ids
}

// CalcTotalAmount sums the line-item prices. Each line's price already
// represents its full contribution, so quantity is not multiplied in.
func CalcTotalAmount(products []OrderProduct) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	return total
}

// Repository defines persistence operations for orders.
type Repository interface {
	Save(ctx context.Context, order *Order) error
}
