package order_test

import (
	"strings"
	"testing"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDFromString(t *testing.T) {
	t.Run("should accept a valid UUID", func(t *testing.T) {
		id, err := order.NewIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("should fail with a typed error for a malformed UUID", func(t *testing.T) {
		_, err := order.NewIDFromString("not-a-uuid")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "orderId")
	})

	t.Run("should fail for blank value", func(t *testing.T) {
		_, err := order.NewIDFromString("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestID_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var id order.ID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrIDIsNotConstructed, err)
	})

	t.Run("should pass for generated ID", func(t *testing.T) {
		id := order.NewID()

		require.NoError(t, id.Validate())
	})
}

func TestNewLineID(t *testing.T) {
	// These cases pin the rule: non-blank and at most 50 characters.
	t.Run("should accept a single character", func(t *testing.T) {
		lineID, err := order.NewLineID("1")

		require.NoError(t, err)
		assert.Equal(t, "1", lineID.Value())
	})

	t.Run("should accept exactly 50 characters", func(t *testing.T) {
		value := strings.Repeat("x", 50)

		lineID, err := order.NewLineID(value)

		require.NoError(t, err)
		assert.Equal(t, value, lineID.Value())
	})

	t.Run("should reject blank value", func(t *testing.T) {
		_, err := order.NewLineID("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject 51 characters", func(t *testing.T) {
		_, err := order.NewLineID(strings.Repeat("x", 51))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestLineID_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var lineID order.LineID

		err := lineID.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrLineIDIsNotConstructed, err)
	})
}
