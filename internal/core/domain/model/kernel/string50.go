package kernel

import (
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// String50MaxLength is the maximum number of characters a String50 may hold.
const String50MaxLength = 50

// ErrString50IsNotConstructed is returned when attempting to use an improperly
// initialized String50. Instances must be created via NewString50.
var ErrString50IsNotConstructed = errs.NewValueIsRequiredError(
	"String50 must be created via NewString50 constructor")

// String50 is a value object for short free-text fields such as names, cities,
// and address lines. A properly constructed String50 is never blank and never
// longer than String50MaxLength characters.
//
// The zero value is invalid and fails Validate - use NewString50 to create
// instances.
//
// Example:
//
//	firstName, err := kernel.NewString50("firstName", "Ada")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(firstName.Value()) // Output: Ada
type String50 struct {
	value string
	guard guard.ConstructorGuard
}

// NewString50 creates a String50 from a raw string.
//
// The paramName identifies the field being validated and is carried into the
// returned error so accumulated validation failures stay readable.
//
// Returns:
//   - String50: A valid instance holding the raw value
//   - error: ValueIsRequiredError if the value is blank,
//     ValueIsOutOfRangeError if it exceeds String50MaxLength characters
func NewString50(paramName string, value string) (String50, error) {
	if value == "" {
		return String50{}, errs.NewValueIsRequiredError(paramName)
	}
	if len(value) > String50MaxLength {
		return String50{}, errs.NewValueIsOutOfRangeError(paramName, len(value), 1, String50MaxLength)
	}

	return String50{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Value returns the underlying string.
func (s String50) Value() string {
	return s.value
}

// Validate checks that the String50 was created through NewString50.
// Returns ErrString50IsNotConstructed for the zero value.
func (s String50) Validate() error {
	return s.guard.Validate(ErrString50IsNotConstructed)
}

// IsEqual compares two String50 values for equality by their content.
func (s String50) IsEqual(other String50) bool {
	return s.value == other.value
}

// String implements fmt.Stringer.
func (s String50) String() string {
	return s.value
}
