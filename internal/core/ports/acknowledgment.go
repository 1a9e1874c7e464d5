package ports

import (
	"context"

	"ordertaking/internal/core/domain/model/order"
)

// AcknowledgmentRenderer produces the acknowledgment letter for a priced
// order.
type AcknowledgmentRenderer interface {
	// CreateOrderAcknowledgmentLetter renders the letter body. Rendering
	// is infallible for a properly constructed priced order.
	CreateOrderAcknowledgmentLetter(pricedOrder order.PricedOrder) order.HTMLDocument
}

// AcknowledgmentSender delivers an acknowledgment to the customer.
//
// Delivery is best-effort: a NotSent result is a normal outcome, not an
// error, and only suppresses the acknowledgment-sent event.
type AcknowledgmentSender interface {
	// SendOrderAcknowledgment attempts delivery and reports whether the
	// letter went out.
	SendOrderAcknowledgment(ctx context.Context, acknowledgment order.OrderAcknowledgment) order.SendResult
}
