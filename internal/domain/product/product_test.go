package product

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sauna-shop/backend/internal/domain/validation"
)

const (
	testID      = "3f8e6a6d-5b1c-4f0a-8b8e-2a9d4c7e1f55"
	testOwnerID = "d9e2f3a4-5b6c-7d8e-9f0a-1b2c3d4e5f6a"
)

func mustProduct(t *testing.T, name, description string, price int64, stock int) *Product {
	t.Helper()
	p, err := NewWithID(testID, testOwnerID, name, description, decimal.NewFromInt(price), stock)
	require.NoError(t, err)
	return p
}

func TestNew_GeneratesID(t *testing.T) {
	p, err := New(testOwnerID, "Sauna hat", "Keeps your head cool.", decimal.NewFromInt(3500), 20)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(p.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, testOwnerID, p.OwnerID)
}

func TestNewWithID(t *testing.T) {
	p := mustProduct(t, "Sauna hat", "Keeps your head cool.", 3500, 20)
	assert.Equal(t, testID, p.ID)
	assert.Equal(t, 20, p.Stock)
	assert.True(t, decimal.NewFromInt(3500).Equal(p.Price))
}

func TestNewWithID_Validation(t *testing.T) {
	valid := func() (id, ownerID, name, description string, price decimal.Decimal, stock int) {
		return testID, testOwnerID, "Sauna hat", "Keeps your head cool.", decimal.NewFromInt(3500), 20
	}

	tests := []struct {
		name   string
		mutate func(id, ownerID, name, description *string, price *decimal.Decimal, stock *int)
		field  string
		code   validation.Code
	}{
		{
			name:   "invalid id",
			mutate: func(id, _, _, _ *string, _ *decimal.Decimal, _ *int) { *id = "bogus" },
			field:  "id",
			code:   validation.CodeInvalidID,
		},
		{
			name:   "invalid owner id",
			mutate: func(_, ownerID, _, _ *string, _ *decimal.Decimal, _ *int) { *ownerID = "bogus" },
			field:  "owner_id",
			code:   validation.CodeInvalidID,
		},
		{
			name:   "empty name",
			mutate: func(_, _, name, _ *string, _ *decimal.Decimal, _ *int) { *name = "" },
			field:  "name",
			code:   validation.CodeInvalidName,
		},
		{
			name:   "name too long",
			mutate: func(_, _, name, _ *string, _ *decimal.Decimal, _ *int) { *name = strings.Repeat("x", 101) },
			field:  "name",
			code:   validation.CodeInvalidName,
		},
		{
			name:   "empty description",
			mutate: func(_, _, _, description *string, _ *decimal.Decimal, _ *int) { *description = "" },
			field:  "description",
			code:   validation.CodeInvalidDescription,
		},
		{
			name: "description too long",
			mutate: func(_, _, _, description *string, _ *decimal.Decimal, _ *int) {
				*description = strings.Repeat("x", 1001)
			},
			field: "description",
			code:  validation.CodeInvalidDescription,
		},
		{
			name:   "zero price",
			mutate: func(_, _, _, _ *string, price *decimal.Decimal, _ *int) { *price = decimal.Zero },
			field:  "price",
			code:   validation.CodeInvalidPrice,
		},
		{
			name:   "negative stock",
			mutate: func(_, _, _, _ *string, _ *decimal.Decimal, stock *int) { *stock = -1 },
			field:  "stock",
			code:   validation.CodeInvalidStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ownerID, name, description, price, stock := valid()
			tt.mutate(&id, &ownerID, &name, &description, &price, &stock)

			_, err := NewWithID(id, ownerID, name, description, price, stock)

			var vErr *validation.Error
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, tt.code, vErr.Code)
		})
	}
}

// Length bounds count characters, not bytes.
func TestNewWithID_MultibyteLengths(t *testing.T) {
	_, err := NewWithID(testID, testOwnerID, strings.Repeat("あ", 100), "サウナハット", decimal.NewFromInt(3500), 20)
	require.NoError(t, err)

	_, err = NewWithID(testID, testOwnerID, strings.Repeat("あ", 101), "サウナハット", decimal.NewFromInt(3500), 20)
	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)
}

func TestConsume(t *testing.T) {
	p := mustProduct(t, "Sauna hat", "Keeps your head cool.", 3500, 5)

	require.NoError(t, p.Consume(2))
	assert.Equal(t, 3, p.Stock)

	require.NoError(t, p.Consume(3))
	assert.Equal(t, 0, p.Stock)
}

func TestConsume_InsufficientStock(t *testing.T) {
	p := mustProduct(t, "Sauna hat", "Keeps your head cool.", 3500, 5)

	err := p.Consume(6)

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, testID, stockErr.ProductID)
	assert.Equal(t, 6, stockErr.Requested)
	assert.Equal(t, 5, stockErr.Stock)

	// Stock is untouched on failure.
	assert.Equal(t, 5, p.Stock)
}
