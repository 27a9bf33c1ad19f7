// Package cart models a user's shopping cart: an ordered list of product
// lines, unique by product id, used as the read-only input to order placement.
package cart

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/sauna-shop/backend/internal/domain/validation"
)

// ErrProductNotFound is returned when no cart line matches the requested
// product id.
var ErrProductNotFound = errors.New("cart product not found")

// ErrNotFound is returned when a user has no stored cart.
var ErrNotFound = errors.New("cart not found")

// CartProduct is a single line in a shopping cart.
type CartProduct struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// NewCartProduct validates the product id and quantity and returns the line.
func NewCartProduct(productID string, quantity int) (CartProduct, error) {
	if !validation.ValidID(productID) {
		return CartProduct{}, validation.NewError("product_id", validation.CodeInvalidID)
	}
	if quantity < 1 {
		return CartProduct{}, validation.NewError("quantity", validation.CodeInvalidQuantity)
	}
	return CartProduct{ProductID: productID, Quantity: quantity}, nil
}

// Cart holds the products a user intends to order. Lines keep their
// insertion order and are unique by product id.
type Cart struct {
	UserID   string
	Products []CartProduct
}

// New creates an empty cart for the given user.
func New(userID string) (*Cart, error) {
	if !validation.ValidID(userID) {
		return nil, validation.NewError("user_id", validation.CodeInvalidID)
	}
	return &Cart{UserID: userID}, nil
}

// ProductIDs returns the product ids of all lines in cart order.
func (c *Cart) ProductIDs() []string {
	ids := make([]string, len(c.Products))
	for i, p := range c.Products {
		ids[i] = p.ProductID
	}
	return ids
}

// QuantityByProductID returns the quantity of the line matching productID.
// Returns ErrProductNotFound when no line matches.
func (c *Cart) QuantityByProductID(productID string) (int, error) {
	for _, p := range c.Products {
		if p.ProductID == productID {
			return p.Quantity, nil
		}
	}
	return 0, ErrProductNotFound
}

// AddProducts adds a validated line for productID. When a line for the same
// product already exists its quantity is overwritten with the new value,
// never summed.
func (c *Cart) AddProducts(productID string, quantity int) error {
	line, err := NewCartProduct(productID, quantity)
	if err != nil {
		return err
	}
	for i := range c.Products {
		if c.Products[i].ProductID == productID {
			c.Products[i].Quantity = line.Quantity
			return nil
		}
	}
	c.Products = append(c.Products, line)
	return nil
}

// RemoveProduct removes the line matching productID. Removing an absent
// line is a no-op.
func (c *Cart) RemoveProduct(productID string) {
	for i := range c.Products {
		if c.Products[i].ProductID == productID {
			c.Products = append(c.Products[:i], c.Products[i+1:]...)
			return
		}
	}
}

// Repository defines persistence operations for carts.
type Repository interface {
	FindByUserID(ctx context.Context, userID string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
}
