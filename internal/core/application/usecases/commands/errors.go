package commands

import (
	"errors"
	"fmt"
)

var (
	// ErrRemoteServiceFailed indicates that a collaborating service failed
	// for infrastructure reasons rather than rejecting the order's content.
	ErrRemoteServiceFailed = errors.New("remote service failed")

	// ErrPricingFailed indicates that a validated order could not be priced,
	// for example because an amount left its allowed range.
	ErrPricingFailed = errors.New("pricing failed")
)

// RemoteServiceError reports an infrastructure failure of a collaborating
// service. It aborts the workflow and is distinct from a validation failure
// of the order itself.
type RemoteServiceError struct {
	Service string
	Cause   error
}

// NewRemoteServiceError creates a RemoteServiceError for the named service.
func NewRemoteServiceError(service string, cause error) *RemoteServiceError {
	return &RemoteServiceError{Service: service, Cause: cause}
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("remote service failed: %s: %v", e.Service, e.Cause)
}

func (e *RemoteServiceError) Unwrap() error {
	return ErrRemoteServiceFailed
}

// PricingError reports that pricing a validated order failed.
type PricingError struct {
	Message string
	Cause   error
}

// NewPricingError creates a PricingError with the given message.
func NewPricingError(message string, cause error) *PricingError {
	return &PricingError{Message: message, Cause: cause}
}

func (e *PricingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pricing failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pricing failed: %s", e.Message)
}

func (e *PricingError) Unwrap() error {
	return ErrPricingFailed
}
