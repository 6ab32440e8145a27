package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		code     string
		expected order.Status
	}{
		{"received", order.Received},
		{"preparing", order.Preparing},
		{"delivering", order.Delivering},
		{"completed", order.Completed},
		{"canceled", order.Canceled},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			s, err := order.ParseStatus(tc.code)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, s)
			assert.Equal(t, tc.code, s.String())
		})
	}

	t.Run("unknown code", func(t *testing.T) {
		_, err := order.ParseStatus("cooking")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(-1).Validate())
	require.Error(t, order.Status(6).Validate())
	require.NoError(t, order.Canceled.Validate())
}

func TestStatus_StringAndLabelOfInvalid(t *testing.T) {
	assert.Equal(t, "unknown", order.Status(99).String())
	assert.Equal(t, "Desconhecido", order.Unknown.Label())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Canceled.IsTerminal())
	assert.False(t, order.Delivering.IsTerminal())
}

func TestParsePaymentMethod(t *testing.T) {
	for _, m := range []string{"pix", "dinheiro", "cartao"} {
		got, err := order.ParsePaymentMethod(m)
		require.NoError(t, err)
		assert.Equal(t, order.PaymentMethod(m), got)
	}

	_, err := order.ParsePaymentMethod("boleto")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
