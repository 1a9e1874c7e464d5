package ports

import (
	"context"

	"ordertaking/internal/core/domain/model/order"
)

// EventPublisher hands the workflow's domain events to downstream consumers,
// for example a message broker.
type EventPublisher interface {
	// Publish delivers the events in order. Publishing happens after the
	// workflow succeeded, so a failure here is reported to the caller but
	// does not undo the placed order.
	Publish(ctx context.Context, events []order.Event) error
}
