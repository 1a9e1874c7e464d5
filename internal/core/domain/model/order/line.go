package order

import (
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
	"ordertaking/internal/pkg/validation"
)

// ErrValidatedOrderLineIsNotConstructed is returned when attempting to use
// an improperly initialized ValidatedOrderLine.
var ErrValidatedOrderLineIsNotConstructed = errs.NewValueIsRequiredError(
	"ValidatedOrderLine must be created via NewValidatedOrderLine constructor")

// ValidatedOrderLine is one fully validated line of an order. Its quantity
// variant always matches its product code variant, because the quantity is
// derived from the product code during construction.
type ValidatedOrderLine struct {
	lineID      LineID
	productCode ProductCode
	quantity    OrderQuantity
	guard       guard.ConstructorGuard
}

// NewValidatedOrderLine validates a raw order line.
//
// This is a two-stage pipeline, not a flat collection of independent fields:
// the quantity check depends on the product code's variant, so it only runs
// when the product code validated. A failed product code drops the dependent
// quantity check from the composite, but the line ID's own failure is still
// collected and reported. Error order is line ID, product code, quantity.
func NewValidatedOrderLine(raw UnvalidatedOrderLine) (ValidatedOrderLine, error) {
	lineID, lineIDErr := NewLineID(raw.OrderLineID)
	productCode, productCodeErr := NewProductCode(raw.ProductCode)

	var quantity OrderQuantity
	var quantityErr error
	if productCodeErr == nil {
		quantity, quantityErr = NewOrderQuantity(productCode, raw.Quantity)
	}

	if err := validation.Collect(lineIDErr, productCodeErr, quantityErr); err != nil {
		return ValidatedOrderLine{}, err
	}

	return ValidatedOrderLine{
		lineID:      lineID,
		productCode: productCode,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// LineID returns the line's identifier.
func (l ValidatedOrderLine) LineID() LineID {
	return l.lineID
}

// ProductCode returns the line's product code.
func (l ValidatedOrderLine) ProductCode() ProductCode {
	return l.productCode
}

// Quantity returns the line's order quantity.
func (l ValidatedOrderLine) Quantity() OrderQuantity {
	return l.quantity
}

// Validate checks that the line was created through NewValidatedOrderLine.
func (l ValidatedOrderLine) Validate() error {
	return l.guard.Validate(ErrValidatedOrderLineIsNotConstructed)
}
