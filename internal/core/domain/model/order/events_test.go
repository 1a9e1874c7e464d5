package order_test

import (
	"testing"

	"ordertaking/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestEventTypes(t *testing.T) {
	t.Run("should expose stable discriminators", func(t *testing.T) {
		assert.Equal(t, "order.placed", order.OrderPlaced{}.Type())
		assert.Equal(t, "order.billable_placed", order.BillableOrderPlaced{}.Type())
		assert.Equal(t, "order.acknowledgment_sent", order.AcknowledgmentSent{}.Type())
	})

	t.Run("should satisfy the event interface", func(t *testing.T) {
		events := []order.Event{
			order.OrderPlaced{},
			order.BillableOrderPlaced{},
			order.AcknowledgmentSent{},
		}

		assert.Len(t, events, 3)
	})
}
