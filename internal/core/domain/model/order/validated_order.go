package order

import (
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
	"ordertaking/internal/pkg/validation"
)

// ErrValidatedOrderIsNotConstructed is returned when attempting to use an
// improperly initialized ValidatedOrder.
var ErrValidatedOrderIsNotConstructed = errs.NewValueIsRequiredError(
	"ValidatedOrder must be created via NewValidatedOrder constructor")

// ValidatedOrder is a fully validated order: identifier, customer, shipping
// and billing addresses, and a non-empty list of validated lines. Once
// constructed it is immutable; pricing derives a PricedOrder from it rather
// than mutating it.
type ValidatedOrder struct {
	id              ID
	customerInfo    CustomerInfo
	shippingAddress Address
	billingAddress  Address
	lines           []ValidatedOrderLine
	guard           guard.ConstructorGuard
}

// NewValidatedOrder assembles a ValidatedOrder from already-validated parts.
// Every part's construction is re-checked via its guard, and the line list
// must be non-empty. The line slice is copied so later mutation of the
// caller's slice cannot reach into the order.
func NewValidatedOrder(
	id ID,
	customerInfo CustomerInfo,
	shippingAddress Address,
	billingAddress Address,
	lines []ValidatedOrderLine,
) (ValidatedOrder, error) {
	partErrs := []error{
		id.Validate(),
		customerInfo.Validate(),
		shippingAddress.Validate(),
		billingAddress.Validate(),
	}
	if len(lines) == 0 {
		partErrs = append(partErrs, errs.NewValueIsRequiredError("lines"))
	}
	for _, line := range lines {
		partErrs = append(partErrs, line.Validate())
	}

	if err := validation.Collect(partErrs...); err != nil {
		return ValidatedOrder{}, err
	}

	copied := make([]ValidatedOrderLine, len(lines))
	copy(copied, lines)

	return ValidatedOrder{
		id:              id,
		customerInfo:    customerInfo,
		shippingAddress: shippingAddress,
		billingAddress:  billingAddress,
		lines:           copied,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// ID returns the order's identifier.
func (o ValidatedOrder) ID() ID {
	return o.id
}

// CustomerInfo returns the order's customer section.
func (o ValidatedOrder) CustomerInfo() CustomerInfo {
	return o.customerInfo
}

// ShippingAddress returns the order's shipping address.
func (o ValidatedOrder) ShippingAddress() Address {
	return o.shippingAddress
}

// BillingAddress returns the order's billing address.
func (o ValidatedOrder) BillingAddress() Address {
	return o.billingAddress
}

// Lines returns a copy of the order's validated lines in submission order.
func (o ValidatedOrder) Lines() []ValidatedOrderLine {
	out := make([]ValidatedOrderLine, len(o.lines))
	copy(out, o.lines)
	return out
}

// Validate checks that the order was created through NewValidatedOrder.
func (o ValidatedOrder) Validate() error {
	return o.guard.Validate(ErrValidatedOrderIsNotConstructed)
}
