// Package validation holds the field-level invariant checks shared by the
// domain entities: identifier syntax, string lengths, email and phone number
// formats. Violations are reported as *Error values carrying the offending
// field and a locale-independent code; human-readable messages are resolved
// from a per-locale catalog.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Code classifies a validation failure independent of locale.
type Code string

const (
	CodeInvalidID          Code = "invalid_id"
	CodeInvalidQuantity    Code = "invalid_quantity"
	CodeInvalidPrice       Code = "invalid_price"
	CodeInvalidStock       Code = "invalid_stock"
	CodeInvalidName        Code = "invalid_name"
	CodeInvalidDescription Code = "invalid_description"
	CodeInvalidEmail       Code = "invalid_email"
	CodeInvalidPhoneNumber Code = "invalid_phone_number"
	CodeInvalidAddress     Code = "invalid_address"
	CodeEmptyOrderProducts Code = "empty_order_products"
)

// Locale selects the language used when rendering messages.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleJA Locale = "ja"
)

var messages = map[Locale]map[Code]string{
	LocaleEN: {
		CodeInvalidID:          "identifier is not valid",
		CodeInvalidQuantity:    "quantity must be at least 1",
		CodeInvalidPrice:       "price must be at least 1",
		CodeInvalidStock:       "stock must not be negative",
		CodeInvalidName:        "name length is out of range",
		CodeInvalidDescription: "description length is out of range",
		CodeInvalidEmail:       "email address is not valid",
		CodeInvalidPhoneNumber: "phone number must be 10 or 11 digits",
		CodeInvalidAddress:     "address parts must not be empty",
		CodeEmptyOrderProducts: "order must contain at least one product",
	},
	LocaleJA: {
		CodeInvalidID:          "IDの値が不正です。",
		CodeInvalidQuantity:    "購入数の値が不正です。",
		CodeInvalidPrice:       "価格の値が不正です。",
		CodeInvalidStock:       "在庫数の値が不正です。",
		CodeInvalidName:        "名前の値が不正です。",
		CodeInvalidDescription: "商品説明の値が不正です。",
		CodeInvalidEmail:       "メールアドレスの値が不正です。",
		CodeInvalidPhoneNumber: "電話番号の値が不正です。",
		CodeInvalidAddress:     "住所の値が不正です。",
		CodeEmptyOrderProducts: "購入商品がありません。",
	},
}

// Error reports a single violated field invariant.
type Error struct {
	Field string
	Code  Code
}

// NewError creates a validation error for the given field and code.
func NewError(field string, code Code) *Error {
	return &Error{Field: field, Code: code}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message(LocaleEN))
}

// Message renders the localized message for the error's code, falling back
// to English when the locale has no entry.
func (e *Error) Message(locale Locale) string {
	if msg, ok := messages[locale][e.Code]; ok {
		return msg
	}
	return messages[LocaleEN][e.Code]
}

// IDValidator reports whether an identifier is syntactically valid.
type IDValidator func(id string) bool

// UUIDValidator accepts RFC 4122 UUID strings.
func UUIDValidator(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// DefaultIDValidator is consulted by ValidID. Swapping it decouples the
// entities from a particular id generation scheme.
var DefaultIDValidator IDValidator = UUIDValidator

// ValidID reports whether id satisfies the configured identifier scheme.
func ValidID(id string) bool {
	return DefaultIDValidator(id)
}

// ValidEmail reports whether addr is a single parseable RFC 5322 address
// without a display name.
func ValidEmail(addr string) bool {
	parsed, err := mail.ParseAddress(addr)
	return err == nil && parsed.Address == addr
}

// NormalizePhoneNumber strips hyphen separators and reports whether the
// remainder is exactly 10 or 11 digits.
func NormalizePhoneNumber(number string) (string, bool) {
	normalized := strings.ReplaceAll(number, "-", "")
	if len(normalized) != 10 && len(normalized) != 11 {
		return "", false
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return normalized, true
}

// LengthInRange reports whether the character count of s (runes, not bytes)
// falls within [min, max].
func LengthInRange(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}
