package queue

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"ordertaking/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func testPublisher(writer messageWriter) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		writer: writer,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func pricedOrderFixture(t *testing.T) order.PricedOrder {
	t.Helper()

	customer, err := order.NewCustomerInfo(order.UnvalidatedCustomerInfo{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		EmailAddress: "ada@example.com",
	})
	require.NoError(t, err)

	address, err := order.NewAddress(order.CheckedAddress{Address: order.UnvalidatedAddress{
		AddressLine1: "1 Main St",
		City:         "Town",
		ZipCode:      "12345",
	}})
	require.NoError(t, err)

	line, err := order.NewValidatedOrderLine(order.UnvalidatedOrderLine{
		OrderLineID: "line-1",
		ProductCode: "W1234",
		Quantity:    10,
	})
	require.NoError(t, err)

	validated, err := order.NewValidatedOrder(
		order.NewID(), customer, address, address, []order.ValidatedOrderLine{line})
	require.NoError(t, err)

	price, err := order.NewPrice(100.0)
	require.NoError(t, err)
	pricedLine, err := order.NewPricedOrderLine(line, price)
	require.NoError(t, err)
	amount, err := order.SumPrices([]order.Price{price})
	require.NoError(t, err)

	priced, err := order.NewPricedOrder(validated, []order.PricedOrderLine{pricedLine}, amount)
	require.NoError(t, err)
	return priced
}

func TestKafkaEventPublisher_Publish(t *testing.T) {
	t.Run("should write one keyed message per event", func(t *testing.T) {
		priced := pricedOrderFixture(t)
		events := []order.Event{
			order.OrderPlaced{PricedOrder: priced},
			order.BillableOrderPlaced{
				OrderID:        priced.ID(),
				BillingAddress: priced.BillingAddress(),
				AmountToBill:   priced.AmountToBill(),
			},
			order.AcknowledgmentSent{
				OrderID:      priced.ID(),
				EmailAddress: priced.CustomerInfo().EmailAddress(),
			},
		}

		writer := &fakeWriter{}
		err := testPublisher(writer).Publish(t.Context(), events)

		require.NoError(t, err)
		require.Len(t, writer.messages, 3)
		for _, message := range writer.messages {
			assert.Equal(t, priced.ID().String(), string(message.Key))
		}

		var placed map[string]any
		require.NoError(t, json.Unmarshal(writer.messages[0].Value, &placed))
		assert.Equal(t, order.EventTypeOrderPlaced, placed["type"])
		assert.Equal(t, "ada@example.com", placed["emailAddress"])
		assert.InDelta(t, 100.0, placed["amountToBill"], 0.0001)

		var billable map[string]any
		require.NoError(t, json.Unmarshal(writer.messages[1].Value, &billable))
		assert.Equal(t, order.EventTypeBillableOrderPlaced, billable["type"])

		var ack map[string]any
		require.NoError(t, json.Unmarshal(writer.messages[2].Value, &ack))
		assert.Equal(t, order.EventTypeAcknowledgmentSent, ack["type"])
	})

	t.Run("should write nothing for an empty event list", func(t *testing.T) {
		writer := &fakeWriter{}

		err := testPublisher(writer).Publish(t.Context(), nil)

		require.NoError(t, err)
		assert.Empty(t, writer.messages)
	})

	t.Run("should surface writer failures", func(t *testing.T) {
		priced := pricedOrderFixture(t)
		writer := &fakeWriter{err: errors.New("broker unavailable")}

		err := testPublisher(writer).Publish(t.Context(), []order.Event{
			order.OrderPlaced{PricedOrder: priced},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "broker unavailable")
	})
}
