package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create valid and unique identifiers", func(t *testing.T) {
		a := kernel.NewUUID()
		b := kernel.NewUUID()

		require.NoError(t, a.Validate())
		require.NoError(t, b.Validate())
		assert.False(t, a.IsEqual(b))
	})
}

func TestUUIDFromString(t *testing.T) {
	const raw = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

	t.Run("should parse canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString(raw)

		require.NoError(t, err)
		assert.Equal(t, raw, id.String())
	})

	t.Run("should accept urn prefix", func(t *testing.T) {
		id, err := kernel.UUIDFromString("urn:uuid:" + raw)

		require.NoError(t, err)
		assert.Equal(t, raw, id.String())
	})

	t.Run("should reject garbage as invalid value", func(t *testing.T) {
		_, err := kernel.UUIDFromString("order-42")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString(uuid.Nil.String())

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round trip through bytes", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("should reject wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})

		require.Error(t, err)
	})

	t.Run("should reject all-zero bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID

	require.ErrorIs(t, zero.Validate(), errs.ErrValueIsRequired)
	require.NoError(t, kernel.NewUUID().Validate())
}
