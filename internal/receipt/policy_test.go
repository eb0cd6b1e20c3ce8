package receipt

import (
	"testing"

	"github.com/DRSN-tech/kiosk-printer/internal/domain"
	"github.com/DRSN-tech/kiosk-printer/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPolicy(t *testing.T) FormatPolicy {
	t.Helper()
	policy, err := NewFormatPolicy(DefaultLocation)
	require.NoError(t, err)
	return policy
}

func TestFormatMoney(t *testing.T) {
	policy := newTestPolicy(t)

	tests := []struct {
		in   string
		want string
	}{
		{in: "18.5", want: "18,50"},
		{in: "0", want: "0,00"},
		{in: "6.505", want: "6,51"},
		{in: "-3.2", want: "-3,20"},
		{in: "1234", want: "1234,00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.FormatMoney(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	policy := newTestPolicy(t)

	got, err := policy.FormatTimestamp("2024-03-05T17:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "05/03/2024 à 18:30", got)

	// Летнее время: UTC+2
	got, err = policy.FormatTimestamp("2024-07-14T09:05:00Z")
	require.NoError(t, err)
	assert.Equal(t, "14/07/2024 à 11:05", got)
}

func TestFormatTimestamp_Fallback(t *testing.T) {
	policy := newTestPolicy(t)

	got, err := policy.FormatTimestamp("hier soir")
	assert.ErrorIs(t, err, e.ErrFormatFallback)
	assert.Equal(t, "hier soir", got)
}

func TestOrderTypeLabel(t *testing.T) {
	policy := newTestPolicy(t)

	assert.Equal(t, "LIVRAISON", policy.OrderTypeLabel(domain.OrderTypeDelivery))
	assert.Equal(t, "À EMPORTER", policy.OrderTypeLabel(domain.OrderTypePickup))
	assert.Equal(t, "DINE_IN", policy.OrderTypeLabel("DINE_IN"))
}

func TestNewFormatPolicy_UnknownLocation(t *testing.T) {
	_, err := NewFormatPolicy("Mars/Olympus")
	assert.Error(t, err)
}
