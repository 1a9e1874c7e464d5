package order

import (
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrIDIsNotConstructed is returned when attempting to use an improperly
// initialized order ID. Instances must be created via NewID or NewIDFromString.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError(
	"order ID must be created via NewID or NewIDFromString constructors")

// ErrLineIDIsNotConstructed is returned when attempting to use an improperly
// initialized line ID. Instances must be created via NewLineID.
var ErrLineIDIsNotConstructed = errs.NewValueIsRequiredError(
	"line ID must be created via NewLineID constructor")

// ID is the unique identifier of an order. A properly constructed ID always
// holds a valid UUID.
//
// The zero value is invalid and fails Validate - use the constructors to
// create instances.
type ID struct {
	id    uuid.UUID
	guard guard.ConstructorGuard
}

// NewID generates a new random order ID (UUID version 4).
func NewID() ID {
	return ID{
		id:    uuid.New(),
		guard: guard.NewConstructorGuard(),
	}
}

// NewIDFromString parses an order ID from its UUID textual form.
//
// A malformed value yields a typed ValueIsInvalidError carrying the parse
// failure, never a panic, so a bad order ID accumulates alongside the other
// field errors of a submission.
func NewIDFromString(value string) (ID, error) {
	if value == "" {
		return ID{}, errs.NewValueIsRequiredError("orderId")
	}

	parsed, err := uuid.Parse(value)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	return ID{
		id:    parsed,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the standard textual form of the order ID.
func (i ID) String() string {
	return i.id.String()
}

// IsEqual compares two order IDs for equality.
func (i ID) IsEqual(other ID) bool {
	return i.id == other.id
}

// Validate checks that the ID was created through a constructor.
// Returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	return i.guard.Validate(ErrIDIsNotConstructed)
}

// LineID is the identifier of a single order line. A properly constructed
// LineID is never blank and never longer than 50 characters, the same bound
// as every other short text field.
type LineID struct {
	value string
	guard guard.ConstructorGuard
}

// NewLineID creates a LineID from a raw string. The value must be non-empty
// and at most 50 characters, the same bound as every other short text field.
func NewLineID(value string) (LineID, error) {
	if value == "" {
		return LineID{}, errs.NewValueIsRequiredError("orderLineId")
	}
	if len(value) > kernel.String50MaxLength {
		return LineID{}, errs.NewValueIsOutOfRangeError("orderLineId", len(value), 1, kernel.String50MaxLength)
	}

	return LineID{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Value returns the underlying line ID string.
func (l LineID) Value() string {
	return l.value
}

// IsEqual compares two line IDs for equality by their content.
func (l LineID) IsEqual(other LineID) bool {
	return l.value == other.value
}

// Validate checks that the LineID was created through NewLineID.
// Returns ErrLineIDIsNotConstructed for the zero value.
func (l LineID) Validate() error {
	return l.guard.Validate(ErrLineIDIsNotConstructed)
}
