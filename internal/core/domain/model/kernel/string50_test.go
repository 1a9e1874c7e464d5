package kernel_test

import (
	"strings"
	"testing"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewString50(t *testing.T) {
	t.Run("should create valid value for non-empty string", func(t *testing.T) {
		s, err := kernel.NewString50("firstName", "Ada")

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "Ada", s.Value())
	})

	t.Run("should accept string of exactly 50 characters", func(t *testing.T) {
		value := strings.Repeat("x", 50)

		s, err := kernel.NewString50("city", value)

		require.NoError(t, err)
		assert.Equal(t, value, s.Value())
	})

	t.Run("should accept string of a single character", func(t *testing.T) {
		s, err := kernel.NewString50("city", "A")

		require.NoError(t, err)
		assert.Equal(t, "A", s.Value())
	})

	t.Run("should fail for blank string", func(t *testing.T) {
		_, err := kernel.NewString50("firstName", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "firstName")
	})

	t.Run("should fail for string longer than 50 characters", func(t *testing.T) {
		_, err := kernel.NewString50("lastName", strings.Repeat("x", 51))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "lastName")
	})
}

func TestString50_Validate(t *testing.T) {
	t.Run("should pass for properly constructed value", func(t *testing.T) {
		s, _ := kernel.NewString50("city", "Town")

		require.NoError(t, s.Validate())
	})

	t.Run("should fail for zero value", func(t *testing.T) {
		var s kernel.String50

		err := s.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrString50IsNotConstructed, err)
	})
}

func TestString50_IsEqual(t *testing.T) {
	t.Run("should compare by content", func(t *testing.T) {
		a, _ := kernel.NewString50("city", "Town")
		b, _ := kernel.NewString50("street", "Town")
		c, _ := kernel.NewString50("city", "Village")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
