package order

import (
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
	"ordertaking/internal/pkg/validation"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Instances must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"Address must be created via NewAddress constructor")

// Address is a validated postal address: one required line, up to three
// optional lines, a city, and a zip code.
//
// The zero value is invalid and fails Validate - use NewAddress to create
// instances.
type Address struct {
	addressLine1 kernel.String50
	addressLine2 *kernel.String50
	addressLine3 *kernel.String50
	addressLine4 *kernel.String50
	city         kernel.String50
	zipCode      kernel.ZipCode
	guard        guard.ConstructorGuard
}

// NewAddress validates a checked address into an Address.
//
// The required fields (line 1, city, zip) are collected together; if any of
// them fail, their accumulated errors are returned and the optional lines
// are not considered.
//
// The optional lines cascade by presence rather than validating
// independently: a missing line cuts off everything after it.
//
//   - line 2 absent: lines 3 and 4 are ignored entirely, whatever they hold
//   - line 2 present, line 3 absent: only line 2 is validated; line 4 is
//     ignored even if supplied
//   - lines 2 and 3 present, line 4 absent: lines 2 and 3 are collected
//     together
//   - all three present: lines 2, 3, and 4 are collected together
//
// A supplied-but-invalid later line therefore goes completely unreported
// when an earlier optional line is absent. That mirrors the behavior the
// business signed off on; change it only with a product decision.
func NewAddress(checked CheckedAddress) (Address, error) {
	raw := checked.Address

	line1, line1Err := kernel.NewString50("addressLine1", raw.AddressLine1)
	city, cityErr := kernel.NewString50("city", raw.City)
	zip, zipErr := kernel.NewZipCode(raw.ZipCode)

	if err := validation.Collect(line1Err, cityErr, zipErr); err != nil {
		return Address{}, err
	}

	address := Address{
		addressLine1: line1,
		city:         city,
		zipCode:      zip,
		guard:        guard.NewConstructorGuard(),
	}

	if raw.AddressLine2 == nil {
		return address, nil
	}
	line2, line2Err := kernel.NewString50("addressLine2", *raw.AddressLine2)

	if raw.AddressLine3 == nil {
		if line2Err != nil {
			return Address{}, validation.Collect(line2Err)
		}
		address.addressLine2 = &line2
		return address, nil
	}
	line3, line3Err := kernel.NewString50("addressLine3", *raw.AddressLine3)

	if raw.AddressLine4 == nil {
		if err := validation.Collect(line2Err, line3Err); err != nil {
			return Address{}, err
		}
		address.addressLine2 = &line2
		address.addressLine3 = &line3
		return address, nil
	}
	line4, line4Err := kernel.NewString50("addressLine4", *raw.AddressLine4)

	if err := validation.Collect(line2Err, line3Err, line4Err); err != nil {
		return Address{}, err
	}
	address.addressLine2 = &line2
	address.addressLine3 = &line3
	address.addressLine4 = &line4
	return address, nil
}

// AddressLine1 returns the required first address line.
func (a Address) AddressLine1() kernel.String50 {
	return a.addressLine1
}

// AddressLine2 returns the second address line, or nil if not supplied.
func (a Address) AddressLine2() *kernel.String50 {
	return a.addressLine2
}

// AddressLine3 returns the third address line, or nil if not supplied.
func (a Address) AddressLine3() *kernel.String50 {
	return a.addressLine3
}

// AddressLine4 returns the fourth address line, or nil if not supplied.
func (a Address) AddressLine4() *kernel.String50 {
	return a.addressLine4
}

// City returns the city.
func (a Address) City() kernel.String50 {
	return a.city
}

// ZipCode returns the zip code.
func (a Address) ZipCode() kernel.ZipCode {
	return a.zipCode
}

// Validate checks that the Address was created through NewAddress.
// Returns ErrAddressIsNotConstructed for the zero value.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
