// Package queue publishes domain events to a Kafka topic.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"ordertaking/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// messageWriter abstracts kafka.Writer for testing.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaEventPublisher writes place-order events to a Kafka topic as JSON
// envelopes. Messages are keyed by order ID so all events of one order land
// in the same partition, in order.
type KafkaEventPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewKafkaEventPublisher creates a publisher for the given broker host and
// topic.
func NewKafkaEventPublisher(host string, topic string, logger *slog.Logger) *KafkaEventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(host),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}
	return &KafkaEventPublisher{
		writer: writer,
		logger: logger.With("component", "kafka_event_publisher"),
	}
}

type addressEnvelope struct {
	AddressLine1 string  `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	AddressLine3 *string `json:"addressLine3,omitempty"`
	AddressLine4 *string `json:"addressLine4,omitempty"`
	City         string  `json:"city"`
	ZipCode      string  `json:"zipCode"`
}

type lineEnvelope struct {
	OrderLineID string  `json:"orderLineId"`
	ProductCode string  `json:"productCode"`
	Quantity    float64 `json:"quantity"`
	LinePrice   float64 `json:"linePrice"`
}

type orderPlacedEnvelope struct {
	Type            string          `json:"type"`
	OrderID         string          `json:"orderId"`
	EmailAddress    string          `json:"emailAddress"`
	ShippingAddress addressEnvelope `json:"shippingAddress"`
	BillingAddress  addressEnvelope `json:"billingAddress"`
	Lines           []lineEnvelope  `json:"lines"`
	AmountToBill    float64         `json:"amountToBill"`
}

type billableOrderPlacedEnvelope struct {
	Type           string          `json:"type"`
	OrderID        string          `json:"orderId"`
	BillingAddress addressEnvelope `json:"billingAddress"`
	AmountToBill   float64         `json:"amountToBill"`
}

type acknowledgmentSentEnvelope struct {
	Type         string `json:"type"`
	OrderID      string `json:"orderId"`
	EmailAddress string `json:"emailAddress"`
}

// Publish writes the events to the topic in order, in a single batch.
func (p *KafkaEventPublisher) Publish(ctx context.Context, events []order.Event) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		message, err := toMessage(event)
		if err != nil {
			return err
		}
		messages = append(messages, message)
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("write events to kafka: %w", err)
	}

	p.logger.InfoContext(ctx, "Published order events", "count", len(messages))
	return nil
}

// Close releases the underlying writer's connections.
func (p *KafkaEventPublisher) Close() error {
	return p.writer.Close()
}

func toMessage(event order.Event) (kafka.Message, error) {
	var orderID string
	var envelope any

	switch e := event.(type) {
	case order.OrderPlaced:
		orderID = e.PricedOrder.ID().String()
		envelope = orderPlacedEnvelope{
			Type:            e.Type(),
			OrderID:         orderID,
			EmailAddress:    e.PricedOrder.CustomerInfo().EmailAddress().Value(),
			ShippingAddress: toAddressEnvelope(e.PricedOrder.ShippingAddress()),
			BillingAddress:  toAddressEnvelope(e.PricedOrder.BillingAddress()),
			Lines:           toLineEnvelopes(e.PricedOrder.Lines()),
			AmountToBill:    e.PricedOrder.AmountToBill().Amount(),
		}
	case order.BillableOrderPlaced:
		orderID = e.OrderID.String()
		envelope = billableOrderPlacedEnvelope{
			Type:           e.Type(),
			OrderID:        orderID,
			BillingAddress: toAddressEnvelope(e.BillingAddress),
			AmountToBill:   e.AmountToBill.Amount(),
		}
	case order.AcknowledgmentSent:
		orderID = e.OrderID.String()
		envelope = acknowledgmentSentEnvelope{
			Type:         e.Type(),
			OrderID:      orderID,
			EmailAddress: e.EmailAddress.Value(),
		}
	default:
		return kafka.Message{}, fmt.Errorf("unknown event type %q", event.Type())
	}

	value, err := json.Marshal(envelope)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode %s event: %w", event.Type(), err)
	}

	return kafka.Message{
		Key:   []byte(orderID),
		Value: value,
	}, nil
}

func toAddressEnvelope(address order.Address) addressEnvelope {
	envelope := addressEnvelope{
		AddressLine1: address.AddressLine1().Value(),
		City:         address.City().Value(),
		ZipCode:      address.ZipCode().Value(),
	}
	if line := address.AddressLine2(); line != nil {
		value := line.Value()
		envelope.AddressLine2 = &value
	}
	if line := address.AddressLine3(); line != nil {
		value := line.Value()
		envelope.AddressLine3 = &value
	}
	if line := address.AddressLine4(); line != nil {
		value := line.Value()
		envelope.AddressLine4 = &value
	}
	return envelope
}

func toLineEnvelopes(lines []order.PricedOrderLine) []lineEnvelope {
	envelopes := make([]lineEnvelope, 0, len(lines))
	for _, line := range lines {
		envelopes = append(envelopes, lineEnvelope{
			OrderLineID: line.LineID().Value(),
			ProductCode: line.ProductCode().Value(),
			Quantity:    line.Quantity().Value(),
			LinePrice:   line.LinePrice().Amount(),
		})
	}
	return envelopes
}
