package order

import "ordertaking/internal/core/domain/model/kernel"

// Event type discriminators, used for routing without reflection (for
// example by the Kafka publisher adapter).
const (
	EventTypeOrderPlaced         = "order.placed"
	EventTypeBillableOrderPlaced = "order.billable_placed"
	EventTypeAcknowledgmentSent  = "order.acknowledgment_sent"
)

// Event is a domain event emitted by the place-order workflow. Implementors
// are immutable snapshots derived from a priced order.
type Event interface {
	Type() string
}

// OrderPlaced is emitted for every successfully priced order and carries the
// complete priced order for downstream consumers.
type OrderPlaced struct {
	PricedOrder PricedOrder
}

// Type returns the event's discriminator.
func (e OrderPlaced) Type() string {
	return EventTypeOrderPlaced
}

// BillableOrderPlaced is emitted for every successfully priced order and
// carries just what billing needs: the order, where to bill, and how much.
type BillableOrderPlaced struct {
	OrderID        ID
	BillingAddress Address
	AmountToBill   BillingAmount
}

// Type returns the event's discriminator.
func (e BillableOrderPlaced) Type() string {
	return EventTypeBillableOrderPlaced
}

// AcknowledgmentSent is emitted only when the acknowledgment letter was
// actually delivered to the customer.
type AcknowledgmentSent struct {
	OrderID      ID
	EmailAddress kernel.EmailAddress
}

// Type returns the event's discriminator.
func (e AcknowledgmentSent) Type() string {
	return EventTypeAcknowledgmentSent
}
