package kernel

import (
	"regexp"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// emailAddressPattern is the email-shaped pattern every EmailAddress must
// match. Matching is case-insensitive.
var emailAddressPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,6}$`)

// ErrEmailAddressIsNotConstructed is returned when attempting to use an
// improperly initialized EmailAddress. Instances must be created via
// NewEmailAddress.
var ErrEmailAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"EmailAddress must be created via NewEmailAddress constructor")

// EmailAddress is a value object for customer email addresses. A properly
// constructed EmailAddress always matches emailAddressPattern.
//
// The zero value is invalid and fails Validate - use NewEmailAddress to
// create instances.
//
// Example:
//
//	email, err := kernel.NewEmailAddress("ada@example.com")
//	if err != nil {
//	    // Handle validation error
//	}
type EmailAddress struct {
	value string
	guard guard.ConstructorGuard
}

// NewEmailAddress creates an EmailAddress from a raw string.
//
// Returns:
//   - EmailAddress: A valid instance holding the raw value
//   - error: ValueIsRequiredError if the value is blank,
//     ValueIsInvalidError if it does not match the email pattern
func NewEmailAddress(value string) (EmailAddress, error) {
	if value == "" {
		return EmailAddress{}, errs.NewValueIsRequiredError("emailAddress")
	}
	if !emailAddressPattern.MatchString(value) {
		return EmailAddress{}, errs.NewValueIsInvalidError("emailAddress")
	}

	return EmailAddress{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Value returns the underlying email address string.
func (e EmailAddress) Value() string {
	return e.value
}

// Validate checks that the EmailAddress was created through NewEmailAddress.
// Returns ErrEmailAddressIsNotConstructed for the zero value.
func (e EmailAddress) Validate() error {
	return e.guard.Validate(ErrEmailAddressIsNotConstructed)
}

// IsEqual compares two EmailAddress values for equality by their content.
func (e EmailAddress) IsEqual(other EmailAddress) bool {
	return e.value == other.value
}

// String implements fmt.Stringer.
func (e EmailAddress) String() string {
	return e.value
}
