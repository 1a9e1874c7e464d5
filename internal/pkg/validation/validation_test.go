package validation_test

import (
	"errors"
	"testing"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	errC := errors.New("c failed")

	t.Run("should return nil when all validations succeed", func(t *testing.T) {
		require.NoError(t, validation.Collect(nil, nil, nil))
		require.NoError(t, validation.Collect())
	})

	t.Run("should collect a single failure", func(t *testing.T) {
		err := validation.Collect(nil, errA, nil)

		require.Error(t, err)
		var verrs *validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, 1, verrs.Len())
		assert.Equal(t, []error{errA}, verrs.All())
	})

	t.Run("should collect every failure in argument order", func(t *testing.T) {
		err := validation.Collect(errA, nil, errB, errC)

		var verrs *validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, 3, verrs.Len())
		assert.Equal(t, []error{errA, errB, errC}, verrs.All())
	})

	t.Run("should flatten nested collections", func(t *testing.T) {
		inner := validation.Collect(errB, errC)

		err := validation.Collect(errA, inner)

		var verrs *validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, []error{errA, errB, errC}, verrs.All())
	})

	t.Run("should be associative regardless of grouping", func(t *testing.T) {
		left := validation.Collect(validation.Collect(errA, errB), errC)
		right := validation.Collect(errA, validation.Collect(errB, errC))
		flat := validation.Collect(errA, errB, errC)

		var leftErrs, rightErrs, flatErrs *validation.Errors
		require.ErrorAs(t, left, &leftErrs)
		require.ErrorAs(t, right, &rightErrs)
		require.ErrorAs(t, flat, &flatErrs)
		assert.Equal(t, flatErrs.All(), leftErrs.All())
		assert.Equal(t, flatErrs.All(), rightErrs.All())
	})

	t.Run("should support errors.Is on individual failures", func(t *testing.T) {
		required := errs.NewValueIsRequiredError("firstName")
		invalid := errs.NewValueIsInvalidError("productCode")

		err := validation.Collect(required, invalid)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should join messages in order", func(t *testing.T) {
		err := validation.Collect(errA, errB)

		assert.Equal(t, "a failed; b failed", err.Error())
	})

	t.Run("should expose messages individually", func(t *testing.T) {
		err := validation.Collect(errA, errB)

		var verrs *validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, []string{"a failed", "b failed"}, verrs.Messages())
	})
}
