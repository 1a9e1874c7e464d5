package kernel

import (
	"errors"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ZipCodeLength is the exact number of digits a ZipCode must hold.
const ZipCodeLength = 5

// ErrZipCodeIsNotConstructed is returned when attempting to use an improperly
// initialized ZipCode. Instances must be created via NewZipCode.
var ErrZipCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"ZipCode must be created via NewZipCode constructor")

// ZipCode is a value object for US-style postal codes. A properly constructed
// ZipCode is always exactly 5 ASCII digits.
//
// The zero value is invalid and fails Validate - use NewZipCode to create
// instances.
type ZipCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewZipCode creates a ZipCode from a raw string.
//
// Returns:
//   - ZipCode: A valid instance holding the raw value
//   - error: ValueIsRequiredError if the value is blank,
//     ValueIsInvalidError unless it is exactly 5 ASCII digits
func NewZipCode(value string) (ZipCode, error) {
	if value == "" {
		return ZipCode{}, errs.NewValueIsRequiredError("zipCode")
	}
	if len(value) != ZipCodeLength || !IsDigitsOnly(value) {
		return ZipCode{}, errs.NewValueIsInvalidErrorWithCause("zipCode",
			errors.New("must be exactly 5 digits"))
	}

	return ZipCode{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Value returns the underlying zip code string.
func (z ZipCode) Value() string {
	return z.value
}

// Validate checks that the ZipCode was created through NewZipCode.
// Returns ErrZipCodeIsNotConstructed for the zero value.
func (z ZipCode) Validate() error {
	return z.guard.Validate(ErrZipCodeIsNotConstructed)
}

// IsEqual compares two ZipCode values for equality by their content.
func (z ZipCode) IsEqual(other ZipCode) bool {
	return z.value == other.value
}

// String implements fmt.Stringer.
func (z ZipCode) String() string {
	return z.value
}

// IsDigitsOnly reports whether s consists entirely of ASCII digits.
// An empty string is not digits-only.
func IsDigitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
