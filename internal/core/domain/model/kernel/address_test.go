package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should build postal address", func(t *testing.T) {
		a, err := kernel.NewAddress(" Rua das Flores ", "120", "apto 3", "Centro", "Recife", "50000-000")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.False(t, a.IsPickup())
		assert.Equal(t, "Rua das Flores", a.Street())
		assert.Equal(t, "Rua das Flores, 120 apto 3 - Centro, Recife", a.String())
	})

	t.Run("should report every missing field", func(t *testing.T) {
		_, err := kernel.NewAddress("", " ", "", "", "Recife", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "number")
		assert.Contains(t, err.Error(), "neighborhood")
		assert.NotContains(t, err.Error(), "city")
	})
}

func TestPickupAddress(t *testing.T) {
	a := kernel.PickupAddress()

	require.NoError(t, a.Validate())
	assert.True(t, a.IsPickup())
	assert.Equal(t, "pickup", a.String())
}

func TestAddress_ZeroValueIsInvalid(t *testing.T) {
	var a kernel.Address

	require.ErrorIs(t, a.Validate(), kernel.ErrAddressIsNotConstructed)
}

func TestRoundAmount(t *testing.T) {
	assert.InDelta(t, 10.13, kernel.RoundAmount(10.125000001), 1e-9)
	assert.InDelta(t, 0.3, kernel.RoundAmount(0.1+0.2), 1e-9)
}
