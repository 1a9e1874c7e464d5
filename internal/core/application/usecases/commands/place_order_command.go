package commands

import (
	"errors"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/guard"
)

// ErrPlaceOrderCommandIsNotConstructed is returned when attempting to use
// an improperly initialized PlaceOrderCommand.
var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to run an order submission through
// the place-order workflow.
//
// The command deliberately performs no field checks: the submission it
// carries is unvalidated by definition, and the workflow's validation stage
// is responsible for reporting every field violation at once.
type PlaceOrderCommand struct {
	unvalidatedOrder order.UnvalidatedOrder

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand wraps a raw order submission into a command.
func NewPlaceOrderCommand(unvalidatedOrder order.UnvalidatedOrder) PlaceOrderCommand {
	return PlaceOrderCommand{
		unvalidatedOrder: unvalidatedOrder,
		guard:            guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// UnvalidatedOrder returns the raw order submission.
func (c PlaceOrderCommand) UnvalidatedOrder() order.UnvalidatedOrder {
	return c.unvalidatedOrder
}
