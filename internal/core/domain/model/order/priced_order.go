package order

import (
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
	"ordertaking/internal/pkg/validation"
)

// ErrPricedOrderLineIsNotConstructed is returned when attempting to use an
// improperly initialized PricedOrderLine.
var ErrPricedOrderLineIsNotConstructed = errs.NewValueIsRequiredError(
	"PricedOrderLine must be created via NewPricedOrderLine constructor")

// ErrPricedOrderIsNotConstructed is returned when attempting to use an
// improperly initialized PricedOrder.
var ErrPricedOrderIsNotConstructed = errs.NewValueIsRequiredError(
	"PricedOrder must be created via NewPricedOrder constructor")

// PricedOrderLine is a validated order line with its computed line price
// attached.
type PricedOrderLine struct {
	lineID      LineID
	productCode ProductCode
	quantity    OrderQuantity
	linePrice   Price
	guard       guard.ConstructorGuard
}

// NewPricedOrderLine attaches a line price to a validated line.
func NewPricedOrderLine(line ValidatedOrderLine, linePrice Price) (PricedOrderLine, error) {
	if err := validation.Collect(line.Validate(), linePrice.Validate()); err != nil {
		return PricedOrderLine{}, err
	}
	return PricedOrderLine{
		lineID:      line.LineID(),
		productCode: line.ProductCode(),
		quantity:    line.Quantity(),
		linePrice:   linePrice,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// LineID returns the line's identifier.
func (l PricedOrderLine) LineID() LineID {
	return l.lineID
}

// ProductCode returns the line's product code.
func (l PricedOrderLine) ProductCode() ProductCode {
	return l.productCode
}

// Quantity returns the line's order quantity.
func (l PricedOrderLine) Quantity() OrderQuantity {
	return l.quantity
}

// LinePrice returns the computed price for the line.
func (l PricedOrderLine) LinePrice() Price {
	return l.linePrice
}

// Validate checks that the line was created through NewPricedOrderLine.
func (l PricedOrderLine) Validate() error {
	return l.guard.Validate(ErrPricedOrderLineIsNotConstructed)
}

// PricedOrder is a validated order with line prices and the total billing
// amount attached. It is derived exactly once per order and flows forward
// as an immutable event payload.
type PricedOrder struct {
	id              ID
	customerInfo    CustomerInfo
	shippingAddress Address
	billingAddress  Address
	amountToBill    BillingAmount
	lines           []PricedOrderLine
	guard           guard.ConstructorGuard
}

// NewPricedOrder derives a priced order from a validated order, its priced
// lines, and the summed billing amount.
func NewPricedOrder(
	validated ValidatedOrder,
	lines []PricedOrderLine,
	amountToBill BillingAmount,
) (PricedOrder, error) {
	partErrs := []error{validated.Validate(), amountToBill.Validate()}
	if len(lines) == 0 {
		partErrs = append(partErrs, errs.NewValueIsRequiredError("lines"))
	}
	for _, line := range lines {
		partErrs = append(partErrs, line.Validate())
	}

	if err := validation.Collect(partErrs...); err != nil {
		return PricedOrder{}, err
	}

	copied := make([]PricedOrderLine, len(lines))
	copy(copied, lines)

	return PricedOrder{
		id:              validated.ID(),
		customerInfo:    validated.CustomerInfo(),
		shippingAddress: validated.ShippingAddress(),
		billingAddress:  validated.BillingAddress(),
		amountToBill:    amountToBill,
		lines:           copied,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// ID returns the order's identifier.
func (o PricedOrder) ID() ID {
	return o.id
}

// CustomerInfo returns the order's customer section.
func (o PricedOrder) CustomerInfo() CustomerInfo {
	return o.customerInfo
}

// ShippingAddress returns the order's shipping address.
func (o PricedOrder) ShippingAddress() Address {
	return o.shippingAddress
}

// BillingAddress returns the order's billing address.
func (o PricedOrder) BillingAddress() Address {
	return o.billingAddress
}

// AmountToBill returns the order's total billing amount.
func (o PricedOrder) AmountToBill() BillingAmount {
	return o.amountToBill
}

// Lines returns a copy of the order's priced lines in submission order.
func (o PricedOrder) Lines() []PricedOrderLine {
	out := make([]PricedOrderLine, len(o.lines))
	copy(out, o.lines)
	return out
}

// Validate checks that the order was created through NewPricedOrder.
func (o PricedOrder) Validate() error {
	return o.guard.Validate(ErrPricedOrderIsNotConstructed)
}
