package order

import (
	"fmt"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ProductKind discriminates the variants of a ProductCode.
type ProductKind int

const (
	// ProductKindUnknown represents an invalid or undefined product kind.
	// This value (0) helps catch uninitialized ProductCode values.
	ProductKindUnknown ProductKind = iota

	// ProductKindWidget is a product sold in whole units ("W" + 4 digits).
	ProductKindWidget

	// ProductKindGizmo is a product sold by weight ("G" + 3 digits).
	ProductKindGizmo
)

const (
	widgetCodeDigits = 4
	gizmoCodeDigits  = 3
)

// ErrProductCodeIsNotConstructed is returned when attempting to use an
// improperly initialized ProductCode. Instances must be created via
// NewProductCode.
var ErrProductCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"ProductCode must be created via NewProductCode constructor")

// String returns the human-readable name of the product kind.
func (k ProductKind) String() string {
	switch k {
	case ProductKindWidget:
		return "Widget"
	case ProductKindGizmo:
		return "Gizmo"
	default:
		return "Unknown"
	}
}

// ProductCode is a tagged variant over the product code formats the shop
// sells: widget codes ("W" followed by exactly 4 digits) and gizmo codes
// ("G" followed by exactly 3 digits). The first character of the raw value
// selects the variant; anything else, or a blank value, is rejected before
// variant dispatch.
//
// The zero value is invalid and fails Validate - use NewProductCode to
// create instances.
type ProductCode struct {
	kind  ProductKind
	value string
	guard guard.ConstructorGuard
}

// NewProductCode creates a ProductCode from a raw string, dispatching on the
// prefix character to the matching variant's sub-validation.
func NewProductCode(value string) (ProductCode, error) {
	if value == "" {
		return ProductCode{}, errs.NewValueIsRequiredError("productCode")
	}

	switch value[0] {
	case 'W':
		return newWidgetCode(value)
	case 'G':
		return newGizmoCode(value)
	default:
		return ProductCode{}, errs.NewValueIsInvalidErrorWithCause("productCode",
			fmt.Errorf("format of %q is not recognised", value))
	}
}

func newWidgetCode(value string) (ProductCode, error) {
	digits := value[1:]
	if len(digits) != widgetCodeDigits || !kernel.IsDigitsOnly(digits) {
		return ProductCode{}, errs.NewValueIsInvalidErrorWithCause("productCode",
			fmt.Errorf("widget code %q must be 'W' followed by exactly %d digits", value, widgetCodeDigits))
	}
	return ProductCode{
		kind:  ProductKindWidget,
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func newGizmoCode(value string) (ProductCode, error) {
	digits := value[1:]
	if len(digits) != gizmoCodeDigits || !kernel.IsDigitsOnly(digits) {
		return ProductCode{}, errs.NewValueIsInvalidErrorWithCause("productCode",
			fmt.Errorf("gizmo code %q must be 'G' followed by exactly %d digits", value, gizmoCodeDigits))
	}
	return ProductCode{
		kind:  ProductKindGizmo,
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Kind returns the variant of the product code.
func (p ProductCode) Kind() ProductKind {
	return p.kind
}

// Value returns the raw product code string, prefix included.
func (p ProductCode) Value() string {
	return p.value
}

// QuantityKind maps the product code's variant to the quantity variant an
// order line for this product must carry: widgets are ordered in whole
// units, gizmos by kilogram.
func (p ProductCode) QuantityKind() QuantityKind {
	switch p.kind {
	case ProductKindWidget:
		return QuantityKindUnit
	case ProductKindGizmo:
		return QuantityKindKilogram
	default:
		return QuantityKindUnknown
	}
}

// IsEqual compares two product codes for equality by their content.
func (p ProductCode) IsEqual(other ProductCode) bool {
	return p.value == other.value
}

// String implements fmt.Stringer.
func (p ProductCode) String() string {
	return p.value
}

// Validate checks that the ProductCode was created through NewProductCode.
// Returns ErrProductCodeIsNotConstructed for the zero value.
func (p ProductCode) Validate() error {
	return p.guard.Validate(ErrProductCodeIsNotConstructed)
}
