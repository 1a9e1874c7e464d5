package order

import (
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// Bounds shared by Price and BillingAmount, inclusive.
const (
	PriceMin = 0.0
	PriceMax = 1000.00
)

// ErrPriceIsNotConstructed is returned when attempting to use an improperly
// initialized Price. Instances must be created via NewPrice.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"Price must be created via NewPrice constructor")

// ErrBillingAmountIsNotConstructed is returned when attempting to use an
// improperly initialized BillingAmount. Instances must be created via
// NewBillingAmount or SumPrices.
var ErrBillingAmountIsNotConstructed = errs.NewValueIsRequiredError(
	"BillingAmount must be created via NewBillingAmount or SumPrices constructors")

// Price is a bounded monetary amount for a single product or order line,
// always within [PriceMin, PriceMax].
//
// The zero value is invalid and fails Validate - use NewPrice to create
// instances.
type Price struct {
	amount float64
	guard  guard.ConstructorGuard
}

// NewPrice creates a Price, range-checking the amount.
func NewPrice(amount float64) (Price, error) {
	if amount < PriceMin || amount > PriceMax {
		return Price{}, errs.NewValueIsOutOfRangeError("price", amount, PriceMin, PriceMax)
	}
	return Price{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Amount returns the underlying amount.
func (p Price) Amount() float64 {
	return p.amount
}

// Multiply scales the price by a quantity, range-checking the result. This
// is how a unit price becomes a line price.
func (p Price) Multiply(factor float64) (Price, error) {
	return NewPrice(p.amount * factor)
}

// Validate checks that the Price was created through NewPrice.
// Returns ErrPriceIsNotConstructed for the zero value.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// BillingAmount is the bounded total billed for a whole order, always within
// [PriceMin, PriceMax].
//
// The zero value is invalid and fails Validate - use the constructors to
// create instances.
type BillingAmount struct {
	amount float64
	guard  guard.ConstructorGuard
}

// NewBillingAmount creates a BillingAmount, range-checking the amount.
func NewBillingAmount(amount float64) (BillingAmount, error) {
	if amount < PriceMin || amount > PriceMax {
		return BillingAmount{}, errs.NewValueIsOutOfRangeError("billingAmount", amount, PriceMin, PriceMax)
	}
	return BillingAmount{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// SumPrices adds up a set of line prices into the order's billing amount,
// range-checking the total.
func SumPrices(prices []Price) (BillingAmount, error) {
	total := 0.0
	for _, price := range prices {
		total += price.Amount()
	}
	return NewBillingAmount(total)
}

// Amount returns the underlying amount.
func (b BillingAmount) Amount() float64 {
	return b.amount
}

// Validate checks that the BillingAmount was created through a constructor.
// Returns ErrBillingAmountIsNotConstructed for the zero value.
func (b BillingAmount) Validate() error {
	return b.guard.Validate(ErrBillingAmountIsNotConstructed)
}
