package ports

import (
	"context"
	"errors"

	"ordertaking/internal/core/domain/model/order"
)

var (
	// ErrAddressInvalidFormat is returned by AddressChecker when the remote
	// service recognises the request but rejects the address shape.
	ErrAddressInvalidFormat = errors.New("address has invalid format")

	// ErrAddressNotFound is returned by AddressChecker when the remote
	// service cannot locate the address.
	ErrAddressNotFound = errors.New("address not found")
)

// AddressChecker verifies an address against an external address service.
//
// The two sentinel errors are treated as validation failures of the
// submitted order; any other error is an infrastructure failure of the
// checking service itself and aborts the workflow.
type AddressChecker interface {
	// CheckAddressExists verifies the raw address and returns it marked as
	// checked on success.
	CheckAddressExists(ctx context.Context, address order.UnvalidatedAddress) (order.CheckedAddress, error)
}
