package order_test

import (
	"testing"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductCode(t *testing.T) {
	t.Run("should create widget code from W plus 4 digits", func(t *testing.T) {
		code, err := order.NewProductCode("W1234")

		require.NoError(t, err)
		require.NoError(t, code.Validate())
		assert.Equal(t, order.ProductKindWidget, code.Kind())
		assert.Equal(t, "W1234", code.Value())
	})

	t.Run("should create gizmo code from G plus 3 digits", func(t *testing.T) {
		code, err := order.NewProductCode("G123")

		require.NoError(t, err)
		assert.Equal(t, order.ProductKindGizmo, code.Kind())
		assert.Equal(t, "G123", code.Value())
	})

	t.Run("should reject blank value before variant dispatch", func(t *testing.T) {
		_, err := order.NewProductCode("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unrecognised prefix", func(t *testing.T) {
		for _, value := range []string{"X1", "1234", "w1234", "g123"} {
			_, err := order.NewProductCode(value)

			require.Error(t, err, value)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, value)
			assert.Contains(t, err.Error(), "not recognised")
		}
	})

	t.Run("should reject widget codes with wrong digit count", func(t *testing.T) {
		for _, value := range []string{"W123", "W12345", "W"} {
			_, err := order.NewProductCode(value)

			require.Error(t, err, value)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, value)
		}
	})

	t.Run("should reject widget codes with non-digit characters", func(t *testing.T) {
		_, err := order.NewProductCode("W12a4")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "widget code")
	})

	t.Run("should reject gizmo codes with wrong digit count", func(t *testing.T) {
		for _, value := range []string{"G12", "G1234", "G"} {
			_, err := order.NewProductCode(value)

			require.Error(t, err, value)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, value)
		}
	})
}

func TestProductCode_QuantityKind(t *testing.T) {
	t.Run("should map widget to unit quantity", func(t *testing.T) {
		code, _ := order.NewProductCode("W1234")

		assert.Equal(t, order.QuantityKindUnit, code.QuantityKind())
	})

	t.Run("should map gizmo to kilogram quantity", func(t *testing.T) {
		code, _ := order.NewProductCode("G123")

		assert.Equal(t, order.QuantityKindKilogram, code.QuantityKind())
	})

	t.Run("should map zero value to unknown", func(t *testing.T) {
		var code order.ProductCode

		assert.Equal(t, order.QuantityKindUnknown, code.QuantityKind())
	})
}

func TestProductCode_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var code order.ProductCode

		err := code.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrProductCodeIsNotConstructed, err)
	})
}

func TestProductKind_String(t *testing.T) {
	assert.Equal(t, "Widget", order.ProductKindWidget.String())
	assert.Equal(t, "Gizmo", order.ProductKindGizmo.String())
	assert.Equal(t, "Unknown", order.ProductKindUnknown.String())
}
