package commands_test

import (
	"testing"

	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("should wrap a raw submission without checking it", func(t *testing.T) {
		submission := order.UnvalidatedOrder{OrderID: "not-even-a-uuid"}

		cmd := commands.NewPlaceOrderCommand(submission)

		require.NoError(t, cmd.Validate())
		assert.Equal(t, submission, cmd.UnvalidatedOrder())
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrPlaceOrderCommandIsNotConstructed, err)
	})
}
