package order

import (
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
	"ordertaking/internal/pkg/validation"
)

// ErrPersonalNameIsNotConstructed is returned when attempting to use an
// improperly initialized PersonalName.
var ErrPersonalNameIsNotConstructed = errs.NewValueIsRequiredError(
	"PersonalName must be created via NewPersonalName constructor")

// ErrCustomerInfoIsNotConstructed is returned when attempting to use an
// improperly initialized CustomerInfo.
var ErrCustomerInfoIsNotConstructed = errs.NewValueIsRequiredError(
	"CustomerInfo must be created via NewCustomerInfo constructor")

// PersonalName is a validated first/last name pair.
type PersonalName struct {
	firstName kernel.String50
	lastName  kernel.String50
	guard     guard.ConstructorGuard
}

// NewPersonalName assembles a PersonalName from already-validated parts.
func NewPersonalName(firstName kernel.String50, lastName kernel.String50) (PersonalName, error) {
	if err := validation.Collect(firstName.Validate(), lastName.Validate()); err != nil {
		return PersonalName{}, err
	}
	return PersonalName{
		firstName: firstName,
		lastName:  lastName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// FirstName returns the first name.
func (n PersonalName) FirstName() kernel.String50 {
	return n.firstName
}

// LastName returns the last name.
func (n PersonalName) LastName() kernel.String50 {
	return n.lastName
}

// Validate checks that the PersonalName was created through NewPersonalName.
func (n PersonalName) Validate() error {
	return n.guard.Validate(ErrPersonalNameIsNotConstructed)
}

// CustomerInfo is the validated customer section of an order: a personal
// name plus an email address.
//
// The zero value is invalid and fails Validate - use NewCustomerInfo to
// create instances.
type CustomerInfo struct {
	name         PersonalName
	emailAddress kernel.EmailAddress
	guard        guard.ConstructorGuard
}

// NewCustomerInfo validates a raw customer section, collecting the first
// name, last name, and email failures together so the caller sees every
// violation at once.
func NewCustomerInfo(raw UnvalidatedCustomerInfo) (CustomerInfo, error) {
	firstName, firstNameErr := kernel.NewString50("firstName", raw.FirstName)
	lastName, lastNameErr := kernel.NewString50("lastName", raw.LastName)
	email, emailErr := kernel.NewEmailAddress(raw.EmailAddress)

	if err := validation.Collect(firstNameErr, lastNameErr, emailErr); err != nil {
		return CustomerInfo{}, err
	}

	name, err := NewPersonalName(firstName, lastName)
	if err != nil {
		return CustomerInfo{}, err
	}

	return CustomerInfo{
		name:         name,
		emailAddress: email,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Name returns the customer's personal name.
func (c CustomerInfo) Name() PersonalName {
	return c.name
}

// EmailAddress returns the customer's email address.
func (c CustomerInfo) EmailAddress() kernel.EmailAddress {
	return c.emailAddress
}

// Validate checks that the CustomerInfo was created through NewCustomerInfo.
func (c CustomerInfo) Validate() error {
	return c.guard.Validate(ErrCustomerInfoIsNotConstructed)
}
