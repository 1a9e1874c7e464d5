package order

import (
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// QuantityKind discriminates the variants of an OrderQuantity.
type QuantityKind int

const (
	// QuantityKindUnknown represents an invalid or undefined quantity kind.
	QuantityKindUnknown QuantityKind = iota

	// QuantityKindUnit is a whole-unit quantity (widgets).
	QuantityKindUnit

	// QuantityKindKilogram is a weight quantity (gizmos).
	QuantityKindKilogram
)

// Bounds for the two quantity variants, inclusive.
const (
	UnitQuantityMin = 1
	UnitQuantityMax = 1000

	KilogramQuantityMin = 0.05
	KilogramQuantityMax = 100.00
)

// ErrOrderQuantityIsNotConstructed is returned when attempting to use an
// improperly initialized OrderQuantity. Instances must be created via one of
// the constructors.
var ErrOrderQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderQuantity must be created via NewOrderQuantity, NewUnitQuantity, or NewKilogramQuantity constructors")

// String returns the human-readable name of the quantity kind.
func (k QuantityKind) String() string {
	switch k {
	case QuantityKindUnit:
		return "Unit"
	case QuantityKindKilogram:
		return "Kilogram"
	default:
		return "Unknown"
	}
}

// OrderQuantity is a tagged variant over the two ways a product can be
// ordered: whole units in [1,1000] or kilograms in [0.05,100.00]. The variant
// is never chosen by the caller directly - it follows the product code's
// variant through NewOrderQuantity.
//
// The zero value is invalid and fails Validate - use the constructors to
// create instances.
type OrderQuantity struct {
	kind      QuantityKind
	units     int
	kilograms float64
	guard     guard.ConstructorGuard
}

// NewOrderQuantity converts a raw quantity to the variant matching the given
// product code and range-checks it. Widget codes yield a unit quantity (the
// raw value is truncated toward zero), gizmo codes a kilogram quantity.
func NewOrderQuantity(code ProductCode, quantity float64) (OrderQuantity, error) {
	if err := code.Validate(); err != nil {
		return OrderQuantity{}, err
	}

	switch code.QuantityKind() {
	case QuantityKindUnit:
		return NewUnitQuantity(int(quantity))
	case QuantityKindKilogram:
		return NewKilogramQuantity(quantity)
	default:
		return OrderQuantity{}, errs.NewValueIsInvalidError("productCode")
	}
}

// NewUnitQuantity creates a whole-unit quantity in [UnitQuantityMin, UnitQuantityMax].
func NewUnitQuantity(units int) (OrderQuantity, error) {
	if units < UnitQuantityMin || units > UnitQuantityMax {
		return OrderQuantity{}, errs.NewValueIsOutOfRangeError("quantity", units, UnitQuantityMin, UnitQuantityMax)
	}
	return OrderQuantity{
		kind:  QuantityKindUnit,
		units: units,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewKilogramQuantity creates a weight quantity in [KilogramQuantityMin, KilogramQuantityMax].
func NewKilogramQuantity(kilograms float64) (OrderQuantity, error) {
	if kilograms < KilogramQuantityMin || kilograms > KilogramQuantityMax {
		return OrderQuantity{}, errs.NewValueIsOutOfRangeError(
			"quantity", kilograms, KilogramQuantityMin, KilogramQuantityMax)
	}
	return OrderQuantity{
		kind:      QuantityKindKilogram,
		kilograms: kilograms,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Kind returns the variant of the quantity.
func (q OrderQuantity) Kind() QuantityKind {
	return q.kind
}

// Units returns the whole-unit count. Zero unless Kind is QuantityKindUnit.
func (q OrderQuantity) Units() int {
	return q.units
}

// Kilograms returns the weight. Zero unless Kind is QuantityKindKilogram.
func (q OrderQuantity) Kilograms() float64 {
	return q.kilograms
}

// Value returns the quantity as a float64 regardless of variant, which is
// what pricing multiplies by.
func (q OrderQuantity) Value() float64 {
	if q.kind == QuantityKindUnit {
		return float64(q.units)
	}
	return q.kilograms
}

// Validate checks that the OrderQuantity was created through a constructor.
// Returns ErrOrderQuantityIsNotConstructed for the zero value.
func (q OrderQuantity) Validate() error {
	return q.guard.Validate(ErrOrderQuantityIsNotConstructed)
}
