package notification

import (
	"context"
	"log/slog"

	"ordertaking/internal/core/domain/model/order"
)

// LoggingSender is an AcknowledgmentSender that records the delivery in the
// log instead of talking to a mail gateway. Stands in for the real gateway
// in environments that have none.
type LoggingSender struct {
	logger *slog.Logger
}

// NewLoggingSender creates a sender that logs every acknowledgment.
func NewLoggingSender(logger *slog.Logger) *LoggingSender {
	return &LoggingSender{
		logger: logger.With("component", "acknowledgment_sender"),
	}
}

// SendOrderAcknowledgment logs the acknowledgment and reports it as sent.
func (s *LoggingSender) SendOrderAcknowledgment(
	ctx context.Context,
	acknowledgment order.OrderAcknowledgment,
) order.SendResult {
	s.logger.InfoContext(ctx, "Order acknowledgment sent",
		"emailAddress", acknowledgment.EmailAddress().Value(),
		"letterBytes", len(acknowledgment.Letter()),
	)
	return order.Sent
}
