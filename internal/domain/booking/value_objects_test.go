//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"parkspot/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDuration(t *testing.T) {
	cases := []struct {
		name    string
		hours   float64
		wantErr bool
	}{
		{name: "minimum", hours: 0.5},
		{name: "maximum", hours: 24},
		{name: "fractional", hours: 1.25},
		{name: "below minimum", hours: 0.49, wantErr: true},
		{name: "zero", hours: 0, wantErr: true},
		{name: "negative", hours: -1, wantErr: true},
		{name: "above maximum", hours: 24.01, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := booking.NewDuration(tc.hours)
			if tc.wantErr {
				require.ErrorIs(t, err, booking.ErrInvalidDuration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.hours, d.Hours())
		})
	}

	t.Run("converts fractional hours", func(t *testing.T) {
		d, err := booking.NewDuration(1.5)
		require.NoError(t, err)
		assert.Equal(t, 90*time.Minute, d.AsTimeDuration())
	})
}

func TestNewPaymentMethod(t *testing.T) {
	t.Run("accepts any non-empty method", func(t *testing.T) {
		for _, v := range []string{"card", "cash", "mastercard", "visa", "zaincash"} {
			p, err := booking.NewPaymentMethod(v)
			require.NoError(t, err)
			assert.Equal(t, v, p.String())
		}
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := booking.NewPaymentMethod("")
		require.ErrorIs(t, err, booking.ErrEmptyPaymentMethod)

		_, err = booking.NewPaymentMethod("   ")
		require.ErrorIs(t, err, booking.ErrEmptyPaymentMethod)
	})
}

func TestNewVehicleNumber(t *testing.T) {
	t.Run("nil is empty", func(t *testing.T) {
		vn, err := booking.NewVehicleNumber(nil)
		require.NoError(t, err)
		assert.True(t, vn.IsEmpty())
		assert.Nil(t, vn.Ptr())
	})

	t.Run("trims whitespace", func(t *testing.T) {
		v := "  ABC-123  "
		vn, err := booking.NewVehicleNumber(&v)
		require.NoError(t, err)
		assert.Equal(t, "ABC-123", vn.String())
	})

	t.Run("rejects over twenty characters", func(t *testing.T) {
		v := strings.Repeat("A", 21)
		_, err := booking.NewVehicleNumber(&v)
		require.ErrorIs(t, err, booking.ErrVehicleNumberTooLong)
	})
}

func TestMoney(t *testing.T) {
	m := booking.NewMoney(1050)
	assert.Equal(t, int64(1050), m.Cents())
	assert.Equal(t, 10.50, m.Amount())
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, booking.StatusActive.CanComplete())
	assert.True(t, booking.StatusCancelled.CanComplete())
	assert.True(t, booking.StatusExpired.CanComplete())
	assert.False(t, booking.StatusCompleted.CanComplete())

	assert.True(t, booking.StatusActive.CanCancel())
	assert.True(t, booking.StatusExpired.CanCancel())
	assert.False(t, booking.StatusCompleted.CanCancel())
	assert.False(t, booking.StatusCancelled.CanCancel())
}
