// Package owner models a seller who lists products in the catalog.
package owner

import (
	"context"

	"github.com/google/uuid"

	"github.com/sauna-shop/backend/internal/domain/validation"
)

const (
	nameLengthMin = 1
	nameLengthMax = 255
)

// Owner represents a seller.
type Owner struct {
	ID    string
	Name  string
	Email string
}

// New creates an owner with a freshly generated identifier.
func New(name, email string) (*Owner, error) {
	return NewWithID(uuid.New().String(), name, email)
}

// NewWithID reconstructs an owner with a caller-supplied identifier.
func NewWithID(id, name, email string) (*Owner, error) {
	if !validation.ValidID(id) {
		return nil, validation.NewError("id", validation.CodeInvalidID)
	}
	if !validation.LengthInRange(name, nameLengthMin, nameLengthMax) {
		return nil, validation.NewError("name", validation.CodeInvalidName)
	}
	if !validation.ValidEmail(email) {
		return nil, validation.NewError("email", validation.CodeInvalidEmail)
	}
	return &Owner{ID: id, Name: name, Email: email}, nil
}

// Repository defines persistence operations for owners.
type Repository interface {
	FindByID(ctx context.Context, id string) (*Owner, error)
	Save(ctx context.Context, owner *Owner) error
}
