package user

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sauna-shop/backend/internal/domain/validation"
)

const testID = "9a3b6e2f-0c41-4a8b-95d2-7f1f5a7c2d10"

func validArgs() (id, email, phone, lastName, firstName, prefecture, city, extra string) {
	return testID, "hanako.sato@example.com", "090-1234-5678",
		"Sato", "Hanako", "Tokyo", "Setagaya", "1-2-3 Sangenjaya"
}

func TestNew_GeneratesID(t *testing.T) {
	_, email, phone, lastName, firstName, prefecture, city, extra := validArgs()

	u, err := New(email, phone, lastName, firstName, prefecture, city, extra)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(u.ID)
	assert.NoError(t, parseErr)
}

func TestNewWithID_NormalizesPhoneNumber(t *testing.T) {
	id, email, _, lastName, firstName, prefecture, city, extra := validArgs()

	u, err := NewWithID(id, email, "090-1234-5678", lastName, firstName, prefecture, city, extra)
	require.NoError(t, err)
	assert.Equal(t, "09012345678", u.PhoneNumber)

	u, err = NewWithID(id, email, "0312345678", lastName, firstName, prefecture, city, extra)
	require.NoError(t, err)
	assert.Equal(t, "0312345678", u.PhoneNumber)
}

func TestNewWithID_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(args []string)
		field  string
		code   validation.Code
	}{
		{
			name:   "invalid id",
			mutate: func(args []string) { args[0] = "bogus" },
			field:  "id",
			code:   validation.CodeInvalidID,
		},
		{
			name:   "invalid email",
			mutate: func(args []string) { args[1] = "not-an-email" },
			field:  "email",
			code:   validation.CodeInvalidEmail,
		},
		{
			name:   "phone too short",
			mutate: func(args []string) { args[2] = "090-123" },
			field:  "phone_number",
			code:   validation.CodeInvalidPhoneNumber,
		},
		{
			name:   "phone with letters",
			mutate: func(args []string) { args[2] = "09012345abc" },
			field:  "phone_number",
			code:   validation.CodeInvalidPhoneNumber,
		},
		{
			name:   "empty last name",
			mutate: func(args []string) { args[3] = "" },
			field:  "last_name",
			code:   validation.CodeInvalidName,
		},
		{
			name:   "first name too long",
			mutate: func(args []string) { args[4] = strings.Repeat("x", 256) },
			field:  "first_name",
			code:   validation.CodeInvalidName,
		},
		{
			name:   "empty prefecture",
			mutate: func(args []string) { args[5] = "" },
			field:  "address",
			code:   validation.CodeInvalidAddress,
		},
		{
			name:   "empty city",
			mutate: func(args []string) { args[6] = "" },
			field:  "address",
			code:   validation.CodeInvalidAddress,
		},
		{
			name:   "empty address extra",
			mutate: func(args []string) { args[7] = "" },
			field:  "address",
			code:   validation.CodeInvalidAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, email, phone, lastName, firstName, prefecture, city, extra := validArgs()
			args := []string{id, email, phone, lastName, firstName, prefecture, city, extra}
			tt.mutate(args)

			_, err := NewWithID(args[0], args[1], args[2], args[3], args[4], args[5], args[6], args[7])

			var vErr *validation.Error
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, tt.code, vErr.Code)
		})
	}
}
