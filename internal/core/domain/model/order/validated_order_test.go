package order_test

import (
	"testing"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress(checked(order.UnvalidatedAddress{
		AddressLine1: "1 Main St",
		City:         "Town",
		ZipCode:      "12345",
	}))
	require.NoError(t, err)
	return address
}

func validCustomerInfo(t *testing.T) order.CustomerInfo {
	t.Helper()
	customer, err := order.NewCustomerInfo(order.UnvalidatedCustomerInfo{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		EmailAddress: "ada@example.com",
	})
	require.NoError(t, err)
	return customer
}

func validLine(t *testing.T) order.ValidatedOrderLine {
	t.Helper()
	line, err := order.NewValidatedOrderLine(order.UnvalidatedOrderLine{
		OrderLineID: "line-1",
		ProductCode: "W1234",
		Quantity:    10,
	})
	require.NoError(t, err)
	return line
}

func TestNewValidatedOrder(t *testing.T) {
	t.Run("should assemble order from validated parts", func(t *testing.T) {
		id := order.NewID()

		validated, err := order.NewValidatedOrder(
			id,
			validCustomerInfo(t),
			validAddress(t),
			validAddress(t),
			[]order.ValidatedOrderLine{validLine(t)},
		)

		require.NoError(t, err)
		require.NoError(t, validated.Validate())
		assert.True(t, validated.ID().IsEqual(id))
		assert.Len(t, validated.Lines(), 1)
	})

	t.Run("should reject empty line list", func(t *testing.T) {
		_, err := order.NewValidatedOrder(
			order.NewID(),
			validCustomerInfo(t),
			validAddress(t),
			validAddress(t),
			nil,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "lines")
	})

	t.Run("should accumulate failures of zero-value parts", func(t *testing.T) {
		var id order.ID
		var customer order.CustomerInfo

		_, err := order.NewValidatedOrder(
			id,
			customer,
			validAddress(t),
			validAddress(t),
			[]order.ValidatedOrderLine{validLine(t)},
		)

		require.Error(t, err)
		var verrs *validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, 2, verrs.Len())
	})

	t.Run("should not expose internal line slice to callers", func(t *testing.T) {
		lines := []order.ValidatedOrderLine{validLine(t)}

		validated, err := order.NewValidatedOrder(
			order.NewID(),
			validCustomerInfo(t),
			validAddress(t),
			validAddress(t),
			lines,
		)
		require.NoError(t, err)

		lines[0] = order.ValidatedOrderLine{}
		got := validated.Lines()
		require.NoError(t, got[0].Validate())

		got[0] = order.ValidatedOrderLine{}
		require.NoError(t, validated.Lines()[0].Validate())
	})
}

func TestValidatedOrder_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var validated order.ValidatedOrder

		err := validated.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrValidatedOrderIsNotConstructed, err)
	})
}
