package order

import (
	"fmt"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
	"ordertaking/internal/pkg/validation"
)

// HTMLDocument is a rendered acknowledgment letter.
type HTMLDocument string

// SendResult reports the outcome of an acknowledgment delivery attempt.
// Delivery is best-effort: NotSent is a normal outcome, not an error, and
// only changes which events the workflow emits.
type SendResult int

const (
	// SendResultUnknown represents an invalid or undefined send result.
	// This value (0) helps catch uninitialized SendResult values.
	SendResultUnknown SendResult = iota

	// Sent indicates the acknowledgment was delivered.
	Sent

	// NotSent indicates delivery was attempted but did not happen.
	NotSent
)

// String returns the human-readable name of the send result.
func (r SendResult) String() string {
	switch r {
	case Sent:
		return "Sent"
	case NotSent:
		return "NotSent"
	default:
		return "Unknown"
	}
}

// Validate checks if the SendResult value is valid.
// Valid results are Sent and NotSent; SendResultUnknown and any other
// values are invalid.
func (r SendResult) Validate() error {
	if r != Sent && r != NotSent {
		return errs.NewValueIsInvalidErrorWithCause("sendResult",
			fmt.Errorf("%d is not a valid send result", r))
	}
	return nil
}

// ErrOrderAcknowledgmentIsNotConstructed is returned when attempting to use
// an improperly initialized OrderAcknowledgment.
var ErrOrderAcknowledgmentIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderAcknowledgment must be created via NewOrderAcknowledgment constructor")

// OrderAcknowledgment pairs the rendered letter with the address it should
// be delivered to.
type OrderAcknowledgment struct {
	emailAddress kernel.EmailAddress
	letter       HTMLDocument
	guard        guard.ConstructorGuard
}

// NewOrderAcknowledgment creates an acknowledgment for a customer email and
// rendered letter. The letter must be non-empty.
func NewOrderAcknowledgment(emailAddress kernel.EmailAddress, letter HTMLDocument) (OrderAcknowledgment, error) {
	partErrs := []error{emailAddress.Validate()}
	if letter == "" {
		partErrs = append(partErrs, errs.NewValueIsRequiredError("letter"))
	}
	if err := validation.Collect(partErrs...); err != nil {
		return OrderAcknowledgment{}, err
	}

	return OrderAcknowledgment{
		emailAddress: emailAddress,
		letter:       letter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// EmailAddress returns the delivery address for the acknowledgment.
func (a OrderAcknowledgment) EmailAddress() kernel.EmailAddress {
	return a.emailAddress
}

// Letter returns the rendered acknowledgment letter.
func (a OrderAcknowledgment) Letter() HTMLDocument {
	return a.letter
}

// Validate checks that the acknowledgment was created through
// NewOrderAcknowledgment.
func (a OrderAcknowledgment) Validate() error {
	return a.guard.Validate(ErrOrderAcknowledgmentIsNotConstructed)
}
