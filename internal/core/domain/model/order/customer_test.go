package order_test

import (
	"strings"
	"testing"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomerInfo(t *testing.T) {
	t.Run("should create customer info from valid fields", func(t *testing.T) {
		customer, err := order.NewCustomerInfo(order.UnvalidatedCustomerInfo{
			FirstName:    "Ada",
			LastName:     "Lovelace",
			EmailAddress: "ada@example.com",
		})

		require.NoError(t, err)
		require.NoError(t, customer.Validate())
		assert.Equal(t, "Ada", customer.Name().FirstName().Value())
		assert.Equal(t, "Lovelace", customer.Name().LastName().Value())
		assert.Equal(t, "ada@example.com", customer.EmailAddress().Value())
	})

	t.Run("should accumulate every field failure in order", func(t *testing.T) {
		_, err := order.NewCustomerInfo(order.UnvalidatedCustomerInfo{
			FirstName:    "",
			LastName:     strings.Repeat("x", 51),
			EmailAddress: "not-an-email",
		})

		require.Error(t, err)
		var verrs *validation.Errors
		require.ErrorAs(t, err, &verrs)
		require.Equal(t, 3, verrs.Len())

		all := verrs.All()
		require.ErrorIs(t, all[0], errs.ErrValueIsRequired)
		assert.Contains(t, all[0].Error(), "firstName")
		require.ErrorIs(t, all[1], errs.ErrValueIsOutOfRange)
		assert.Contains(t, all[1].Error(), "lastName")
		require.ErrorIs(t, all[2], errs.ErrValueIsInvalid)
		assert.Contains(t, all[2].Error(), "emailAddress")
	})

	t.Run("should report a single failing field alone", func(t *testing.T) {
		_, err := order.NewCustomerInfo(order.UnvalidatedCustomerInfo{
			FirstName:    "Ada",
			LastName:     "Lovelace",
			EmailAddress: "broken",
		})

		var verrs *validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, 1, verrs.Len())
	})
}

func TestCustomerInfo_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var customer order.CustomerInfo

		err := customer.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrCustomerInfoIsNotConstructed, err)
	})
}
