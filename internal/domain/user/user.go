// Package user models a shopper's identity profile. Users are read-only
// reference data for the order flow.
package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/sauna-shop/backend/internal/domain/validation"
)

const (
	nameLengthMin = 1
	nameLengthMax = 255
)

// Address is a user's postal address, split into prefecture, city and the
// remaining free-form part.
type Address struct {
	Prefecture string
	City       string
	Extra      string
}

// NewAddress validates that every address part is non-empty.
func NewAddress(prefecture, city, extra string) (Address, error) {
	if prefecture == "" || city == "" || extra == "" {
		return Address{}, validation.NewError("address", validation.CodeInvalidAddress)
	}
	return Address{Prefecture: prefecture, City: city, Extra: extra}, nil
}

// User represents a shopper.
type User struct {
	ID          string
	Email       string
	PhoneNumber string
	LastName    string
	FirstName   string
	Address     Address
}

// New creates a user with a freshly generated identifier.
func New(email, phoneNumber, lastName, firstName, prefecture, city, addressExtra string) (*User, error) {
	return NewWithID(uuid.New().String(), email, phoneNumber, lastName, firstName, prefecture, city, addressExtra)
}

// NewWithID reconstructs a user with a caller-supplied identifier. The phone
// number is normalized by stripping hyphen separators and must resolve to
// exactly 10 or 11 digits.
func NewWithID(id, email, phoneNumber, lastName, firstName, prefecture, city, addressExtra string) (*User, error) {
	if !validation.ValidID(id) {
		return nil, validation.NewError("id", validation.CodeInvalidID)
	}
	if !validation.LengthInRange(lastName, nameLengthMin, nameLengthMax) {
		return nil, validation.NewError("last_name", validation.CodeInvalidName)
	}
	if !validation.LengthInRange(firstName, nameLengthMin, nameLengthMax) {
		return nil, validation.NewError("first_name", validation.CodeInvalidName)
	}
	if !validation.ValidEmail(email) {
		return nil, validation.NewError("email", validation.CodeInvalidEmail)
	}

	normalized, ok := validation.NormalizePhoneNumber(phoneNumber)
	if !ok {
		return nil, validation.NewError("phone_number", validation.CodeInvalidPhoneNumber)
	}

	address, err := NewAddress(prefecture, city, addressExtra)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:          id,
		Email:       email,
		PhoneNumber: normalized,
		LastName:    lastName,
		FirstName:   firstName,
		Address:     address,
	}, nil
}

// Repository defines persistence operations for users.
type Repository interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	Save(ctx context.Context, user *User) error
}
